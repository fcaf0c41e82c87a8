package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorResponse единая форма тела ответа для всех видов отказов
type ErrorResponse struct {
	StatusCode  int       `json:"statusCode"`
	Timestamp   time.Time `json:"timestamp"`
	Message     []string  `json:"message"`
	Description string    `json:"description"`
}

func NewErrorResponse(code int, messages []string, description string) ErrorResponse {
	return ErrorResponse{
		StatusCode:  code,
		Timestamp:   time.Now(),
		Message:     messages,
		Description: description,
	}
}

// RequestDescription описание запроса для поля description
func RequestDescription(c *gin.Context) string {
	return "uri=" + c.Request.URL.Path
}

// ToHTTPResponse преобразует ошибку таксономии в статус и тело ответа.
// Нераспознанные ошибки понижаются до Internal, не раскрывая деталей структуры.
func ToHTTPResponse(err error, description string) (int, ErrorResponse) {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Code, NewErrorResponse(ae.Code, ae.Messages, description)
	}

	code := http.StatusInternalServerError
	message := "внутренняя ошибка сервера"

	switch {
	case errors.Is(err, ErrNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, ErrValidationFailed), errors.Is(err, ErrConflict), errors.Is(err, ErrMalformedInput):
		code = http.StatusBadRequest
		message = err.Error()
	case err != nil:
		message = err.Error()
	}

	return code, NewErrorResponse(code, []string{message}, description)
}

// HandleGinError отправляет ответ об ошибке, если она есть
func HandleGinError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}
	code, response := ToHTTPResponse(err, RequestDescription(c))
	LogError(err, fmt.Sprintf("%s %s -> %d", c.Request.Method, c.Request.URL.Path, code))
	c.JSON(code, response)
	c.Abort()
	return true
}

func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, NewErrorResponse(
			http.StatusNotFound,
			[]string{fmt.Sprintf("Путь не найден: %s", c.Request.URL.Path)},
			RequestDescription(c),
		))
	}
}

func MethodNotAllowedHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, NewErrorResponse(
			http.StatusMethodNotAllowed,
			[]string{fmt.Sprintf("Метод %s не поддерживается для пути %s", c.Request.Method, c.Request.URL.Path)},
			RequestDescription(c),
		))
	}
}

// RecoveryMiddleware перехватывает панику и понижает её до Internal
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				var err error
				switch t := r.(type) {
				case string:
					err = fmt.Errorf("паника: %s", t)
				case error:
					err = fmt.Errorf("паника: %w", t)
				default:
					err = fmt.Errorf("паника: %v", r)
				}
				LogError(err, "Recovery")
				c.JSON(http.StatusInternalServerError, NewErrorResponse(
					http.StatusInternalServerError,
					[]string{"внутренняя ошибка сервера"},
					RequestDescription(c),
				))
				c.Abort()
			}
		}()
		c.Next()
	}
}
