package apperrors

import (
	"fmt"
	"net/http"
)

// AppError carries the HTTP status code a failure should surface as.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, nil)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, nil)
}

// Conflict maps to 400, the code the API uses for name collisions.
func Conflict(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, nil)
}

func Validation(message string) *AppError {
	return NewAppError(http.StatusUnprocessableEntity, message, nil)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, nil)
}
