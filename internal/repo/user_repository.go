package repo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kabanov/user-service/internal/entity"
)

// UserRepository интерфейс репозитория для работы с пользователями
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uint) (*entity.User, error)
}

// ErrUserNotFound ошибка, когда пользователь не найден
var ErrUserNotFound = errors.New("пользователь не найден")

// ErrUsernameTaken нарушение уникальности username при сохранении
var ErrUsernameTaken = errors.New("username is already taken")

// UserRepositoryImpl реализация репозитория пользователей на GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{
		db: db,
	}
}

// Create сохраняет новую запись; вставка атомарна относительно
// ограничения уникальности username
func (r *UserRepositoryImpl) Create(ctx context.Context, user *entity.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", ErrUsernameTaken, user.Username)
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	result := r.db.WithContext(ctx).First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}
