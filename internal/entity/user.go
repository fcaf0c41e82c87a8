package entity

import (
	"time"
)

// Gender пол пользователя, сериализуется символическим именем
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// User представляет персистентную запись пользователя.
// После сохранения id неизменяем, username уникален среди всех записей.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"size:100;not null;unique"`
	Birthdate time.Time `json:"birthdate" gorm:"type:date;not null"`
	Country   string    `json:"country" gorm:"size:100;not null"`
	Phone     string    `json:"phone"`
	Gender    Gender    `json:"gender" gorm:"size:20"`
}

// UserDTO представление пользователя на проводе: тело заявки на регистрацию
// и тело ответа. На входе id отсутствует, в ответе заполнен всегда.
type UserDTO struct {
	ID        uint   `json:"id,omitempty"`
	Username  string `json:"username"`
	Birthdate Date   `json:"birthdate"`
	Country   string `json:"country"`
	Phone     string `json:"phone,omitempty"`
	Gender    Gender `json:"gender,omitempty"`
}
