package errors

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
)

// Закрытая таксономия ошибок сервиса
var (
	ErrNotFound         = errors.New("ресурс не найден")
	ErrValidationFailed = errors.New("данные не прошли валидацию")
	ErrConflict         = errors.New("нарушено ограничение уникальности")
	ErrMalformedInput   = errors.New("бизнес-правило не может быть проверено")
	ErrInternal         = errors.New("внутренняя ошибка сервера")
)

// MissingPreconditionNotice добавляется в ответ, когда кросс-полевое правило
// не может быть вычислено из-за отсутствующих значений
const MissingPreconditionNotice = "Birthdate and country must not be nullable!"

// Violation одно нарушение ограничения, привязанное к полю или ко всему объекту
type Violation struct {
	Field   string
	Message string
}

func (v Violation) String() string {
	return v.Field + " " + v.Message
}

// FormatViolations возвращает сообщения нарушений в порядке их обнаружения
func FormatViolations(violations []Violation) []string {
	messages := make([]string, 0, len(violations))
	for _, v := range violations {
		messages = append(messages, v.String())
	}
	return messages
}

// APIError ошибка с HTTP-статусом и списком сообщений для ответа
type APIError struct {
	Code     int      // HTTP-статус
	Messages []string // Сообщения для тела ответа
	Err      error    // Вид ошибки из таксономии
}

// Error реализует интерфейс error
func (e *APIError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// Unwrap возвращает вид ошибки для errors.Is
func (e *APIError) Unwrap() error {
	return e.Err
}

func NewNotFoundError(id uint) *APIError {
	return &APIError{
		Code:     http.StatusNotFound,
		Messages: []string{fmt.Sprintf("User '%d' not found", id)},
		Err:      ErrNotFound,
	}
}

func NewValidationError(violations []Violation) *APIError {
	return &APIError{
		Code:     http.StatusBadRequest,
		Messages: FormatViolations(violations),
		Err:      ErrValidationFailed,
	}
}

func NewConflictError(err error) *APIError {
	return &APIError{
		Code:     http.StatusBadRequest,
		Messages: []string{err.Error()},
		Err:      ErrConflict,
	}
}

// NewMalformedInputError сохраняет уже собранные пополевые нарушения
// и добавляет уведомление об отсутствующих значениях
func NewMalformedInputError(violations []Violation) *APIError {
	return &APIError{
		Code:     http.StatusBadRequest,
		Messages: append(FormatViolations(violations), MissingPreconditionNotice),
		Err:      ErrMalformedInput,
	}
}

func NewInternalError(err error) *APIError {
	message := "unexpected internal error"
	if err != nil {
		message = err.Error()
	}
	return &APIError{
		Code:     http.StatusInternalServerError,
		Messages: []string{message},
		Err:      ErrInternal,
	}
}

// AppendPrefix добавляет префикс к сообщению об ошибке
func AppendPrefix(err error, prefix string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", prefix, err)
}

// LogError логирует ошибку с контекстом
func LogError(err error, context string) {
	if err == nil {
		return
	}
	log.Printf("ОШИБКА [%s]: %v", context, err)
}

// ErrorGroup представляет группу ошибок, собранных из разных операций
type ErrorGroup struct {
	errors []error
}

// NewErrorGroup создает новую группу ошибок
func NewErrorGroup() *ErrorGroup {
	return &ErrorGroup{
		errors: make([]error, 0),
	}
}

// AddPrefix добавляет ошибку с префиксом в группу (игнорирует nil)
func (g *ErrorGroup) AddPrefix(err error, prefix string) {
	if err != nil {
		g.errors = append(g.errors, AppendPrefix(err, prefix))
	}
}

// HasErrors проверяет, есть ли ошибки в группе
func (g *ErrorGroup) HasErrors() bool {
	return len(g.errors) > 0
}

// Error возвращает конкатенацию всех ошибок в группе
func (g *ErrorGroup) Error() string {
	var sb strings.Builder
	for i, err := range g.errors {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}
