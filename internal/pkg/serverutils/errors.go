package serverutils

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// AppError carries the HTTP status a service failure should be answered with.
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

func NewNotFoundError(format string, args ...interface{}) *AppError {
	return &AppError{Code: fiber.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewBadRequestError(format string, args ...interface{}) *AppError {
	return &AppError{Code: fiber.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

func NewConflictError(format string, args ...interface{}) *AppError {
	return &AppError{Code: fiber.StatusConflict, Message: fmt.Sprintf(format, args...)}
}

func NewInternalError(message string, err error) *AppError {
	return &AppError{Code: fiber.StatusInternalServerError, Message: message, Err: err}
}
