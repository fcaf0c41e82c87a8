package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kabanov/user-service/internal/entity"
	"github.com/kabanov/user-service/internal/repo"
	"github.com/kabanov/user-service/internal/validation"
	errs "github.com/kabanov/user-service/pkg/errors"
)

const rejectionMessage = "Only adult French residents are allowed to create an account"

// Мок для UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUser(ctx context.Context, id uint) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserService) RegisterNewUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	saved := args.Get(0).(*entity.User)
	return saved, args.Error(1)
}

func setupRouter(users *MockUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(errs.RecoveryMiddleware())
	handler := NewUserHandler(users, validation.NewValidator(rejectionMessage))
	handler.RegisterRoutes(router)
	return router
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeErrorResponse(t *testing.T, w *httptest.ResponseRecorder) errs.ErrorResponse {
	t.Helper()
	var resp errs.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRegisterUserCreated(t *testing.T) {
	users := new(MockUserService)
	router := setupRouter(users)

	saved := &entity.User{
		ID:        1,
		Username:  "Bob",
		Birthdate: time.Date(1999, time.December, 11, 0, 0, 0, 0, time.UTC),
		Country:   "France",
	}
	users.On("RegisterNewUser", mock.Anything, mock.Anything).Return(saved, nil)

	w := performRequest(router, http.MethodPost, "/user",
		`{"username":"Bob","country":"France","birthdate":"1999-12-11"}`)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var dto entity.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
	assert.Equal(t, uint(1), dto.ID)
	assert.Equal(t, "Bob", dto.Username)
	assert.Equal(t, "1999-12-11", dto.Birthdate.Format(entity.DateLayout))
	users.AssertExpectations(t)
}

func TestRegisterUserNonFrenchResidentRejected(t *testing.T) {
	users := new(MockUserService)
	router := setupRouter(users)

	w := performRequest(router, http.MethodPost, "/user",
		`{"username":"Alice","country":"Swiss","birthdate":"1999-12-11"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeErrorResponse(t, w)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, []string{"user " + rejectionMessage}, resp.Message)
	assert.Equal(t, "uri=/user", resp.Description)
	users.AssertNotCalled(t, "RegisterNewUser", mock.Anything, mock.Anything)
}

func TestRegisterUserMissingBirthdate(t *testing.T) {
	users := new(MockUserService)
	router := setupRouter(users)

	w := performRequest(router, http.MethodPost, "/user",
		`{"username":"Bob","country":"France"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeErrorResponse(t, w)
	assert.Contains(t, resp.Message, "birthdate Please enter birthdate")
	assert.Contains(t, resp.Message, errs.MissingPreconditionNotice)
	users.AssertNotCalled(t, "RegisterNewUser", mock.Anything, mock.Anything)
}

func TestRegisterUserMalformedJSON(t *testing.T) {
	users := new(MockUserService)
	router := setupRouter(users)

	w := performRequest(router, http.MethodPost, "/user", `{"username":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterUserDuplicateUsernameConflict(t *testing.T) {
	users := new(MockUserService)
	router := setupRouter(users)

	users.On("RegisterNewUser", mock.Anything, mock.Anything).
		Return(nil, errs.NewConflictError(repo.ErrUsernameTaken))

	w := performRequest(router, http.MethodPost, "/user",
		`{"username":"Bob","country":"France","birthdate":"1999-12-11"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeErrorResponse(t, w)
	assert.Contains(t, resp.Message[0], "username is already taken")
}

func TestRegisterUserUnknownFailureDowngradedToInternal(t *testing.T) {
	users := new(MockUserService)
	router := setupRouter(users)

	users.On("RegisterNewUser", mock.Anything, mock.Anything).
		Return(nil, context.DeadlineExceeded)

	w := performRequest(router, http.MethodPost, "/user",
		`{"username":"Bob","country":"France","birthdate":"1999-12-11"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeErrorResponse(t, w)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestGetUserFound(t *testing.T) {
	users := new(MockUserService)
	router := setupRouter(users)

	users.On("GetUser", mock.Anything, uint(1)).Return(&entity.User{
		ID:        1,
		Username:  "Bob",
		Birthdate: time.Date(1999, time.December, 11, 0, 0, 0, 0, time.UTC),
		Country:   "France",
		Gender:    entity.GenderMale,
	}, nil)

	w := performRequest(router, http.MethodGet, "/user/1", "")

	require.Equal(t, http.StatusOK, w.Code)
	var dto entity.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
	assert.Equal(t, "Bob", dto.Username)
	assert.Equal(t, entity.GenderMale, dto.Gender)
	// Пол сериализуется символическим именем, дата — как yyyy-MM-dd
	assert.Contains(t, w.Body.String(), `"MALE"`)
	assert.Contains(t, w.Body.String(), `"1999-12-11"`)
}

func TestGetUserNotFound(t *testing.T) {
	users := new(MockUserService)
	router := setupRouter(users)

	users.On("GetUser", mock.Anything, uint(42)).Return(nil, repo.ErrUserNotFound)

	w := performRequest(router, http.MethodGet, "/user/42", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeErrorResponse(t, w)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, []string{"User '42' not found"}, resp.Message)
	assert.Equal(t, "uri=/user/42", resp.Description)
}

func TestGetUserInvalidID(t *testing.T) {
	users := new(MockUserService)
	router := setupRouter(users)

	w := performRequest(router, http.MethodGet, "/user/abc", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	users.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
}
