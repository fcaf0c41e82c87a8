// Package mapper выполняет преобразование между проводным представлением
// пользователя и персистентной записью. Без валидации и без подстановки значений.
package mapper

import (
	"github.com/kabanov/user-service/internal/entity"
)

// ToUser преобразует заявку в персистентную запись.
// До создания id равен нулю и игнорируется базой при вставке.
func ToUser(dto entity.UserDTO) *entity.User {
	return &entity.User{
		ID:        dto.ID,
		Username:  dto.Username,
		Birthdate: dto.Birthdate.Time,
		Country:   dto.Country,
		Phone:     dto.Phone,
		Gender:    dto.Gender,
	}
}

// ToDTO преобразует запись в проводное представление
func ToDTO(user *entity.User) entity.UserDTO {
	return entity.UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Birthdate: entity.Date{Time: user.Birthdate},
		Country:   user.Country,
		Phone:     user.Phone,
		Gender:    user.Gender,
	}
}
