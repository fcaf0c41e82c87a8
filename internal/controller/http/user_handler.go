package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kabanov/user-service/internal/entity"
	"github.com/kabanov/user-service/internal/mapper"
	"github.com/kabanov/user-service/internal/repo"
	"github.com/kabanov/user-service/internal/validation"
	errs "github.com/kabanov/user-service/pkg/errors"
)

// UserService операции над пользователями, нужные обработчику
type UserService interface {
	GetUser(ctx context.Context, id uint) (*entity.User, error)
	RegisterNewUser(ctx context.Context, user *entity.User) (*entity.User, error)
}

// UserHandler обработчик HTTP-запросов пользователей
type UserHandler struct {
	users     UserService
	validator *validation.Validator
}

func NewUserHandler(users UserService, validator *validation.Validator) *UserHandler {
	return &UserHandler{
		users:     users,
		validator: validator,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/user/:id", h.GetUser)
	router.POST("/user", h.RegisterNewUser)
}

// GetUser отдает данные зарегистрированного пользователя по идентификатору
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, errs.NewErrorResponse(
			http.StatusBadRequest,
			[]string{"id must be a positive integer"},
			errs.RequestDescription(c),
		))
		return
	}

	user, err := h.users.GetUser(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			err = errs.NewNotFoundError(uint(id))
		}
		errs.HandleGinError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapper.ToDTO(user))
}

// RegisterNewUser проверяет заявку, сохраняет запись и возвращает ее с идентификатором
func (h *UserHandler) RegisterNewUser(c *gin.Context) {
	var dto entity.UserDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, errs.NewErrorResponse(
			http.StatusBadRequest,
			[]string{err.Error()},
			errs.RequestDescription(c),
		))
		return
	}

	if err := h.validator.Validate(dto); err != nil {
		errs.HandleGinError(c, err)
		return
	}

	user, err := h.users.RegisterNewUser(c.Request.Context(), mapper.ToUser(dto))
	if errs.HandleGinError(c, err) {
		return
	}

	c.JSON(http.StatusCreated, mapper.ToDTO(user))
}
