package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/kabanov/user-service/internal/entity"
	"github.com/kabanov/user-service/internal/repo"
	errs "github.com/kabanov/user-service/pkg/errors"
)

// UserUseCase оркестрирует чтение и создание пользователей.
// Не логирует и не форматирует ответы — только типизированные ошибки.
type UserUseCase struct {
	repo repo.UserRepository
}

func NewUserUseCase(userRepo repo.UserRepository) *UserUseCase {
	return &UserUseCase{
		repo: userRepo,
	}
}

// GetUser возвращает пользователя по идентификатору.
// Отсутствие записи отдается как repo.ErrUserNotFound — решение о 404 принимает обработчик.
func (uc *UserUseCase) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	return uc.repo.GetByID(ctx, id)
}

// RegisterNewUser сохраняет новую запись. Нарушение уникальности username
// или молчаливо неудавшееся сохранение поднимаются как Conflict, без повторов.
func (uc *UserUseCase) RegisterNewUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	if err := uc.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repo.ErrUsernameTaken) {
			return nil, errs.NewConflictError(err)
		}
		return nil, err
	}

	if user.ID == 0 {
		return nil, errs.NewConflictError(fmt.Errorf("couldn't create a new user"))
	}

	return user, nil
}
