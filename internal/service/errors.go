package service

import (
	"fmt"
	"net/http"
)

// AppError описывает прикладную ошибку сервиса:
// код для клиента, человекочитаемое сообщение, HTTP-статус и вложенная ошибка.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

// Error реализует интерфейс error для AppError.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap возвращает вложенную ошибку для поддержки errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrBadRequest конструирует AppError для ошибок валидации или некорректных запросов клиента.
func ErrBadRequest(msg string) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: msg,
		Status:  http.StatusBadRequest,
	}
}

// ErrNotFound конструирует AppError для ситуации, когда ресурс не найден.
func ErrNotFound(msg string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: msg,
		Status:  http.StatusNotFound,
	}
}

// ErrForbidden конструирует AppError для операций, доступных только капитану,
// и для попытки использовать чужое адресное приглашение.
func ErrForbidden(code, msg string) *AppError {
	return &AppError{
		Code:    code,
		Message: msg,
		Status:  http.StatusForbidden,
	}
}

// ErrDomain конструирует AppError для доменных конфликтов и нарушений инвариантов.
// Внутри подбирается подходящий HTTP-статус в зависимости от кода.
func ErrDomain(code, msg string) *AppError {
	status := http.StatusConflict
	switch code {
	case "INVALID_TOKEN":
		status = http.StatusNotFound
	case "INVITATION_EXPIRED":
		status = http.StatusGone
	case "CAPTAIN_CANNOT_BE_REMOVED", "CAPTAIN_MUST_TRANSFER_OR_DISBAND":
		status = http.StatusBadRequest
	}
	return &AppError{
		Code:    code,
		Message: msg,
		Status:  status,
	}
}

// ErrInternal оборачивает неожиданную ошибку нижних слоёв в AppError со статусом 500.
func ErrInternal(msg string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL",
		Message: msg,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// IsNotFound помогает определить, соответствует ли ошибка HTTP-статусу 404.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if app, ok := err.(*AppError); ok {
		return app.Status == http.StatusNotFound
	}
	return false
}
