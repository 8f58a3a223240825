// Package errors defines the typed application error used at the HTTP
// boundary.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError carries an HTTP status, a user-facing message and the
// wrapped internal error for logs.
type AppError struct {
	Code    int    `json:"status_code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the inner error for errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status of the error.
func (e *AppError) StatusCode() int {
	return e.Code
}

// UserMessage returns the message safe to show to the caller.
func (e *AppError) UserMessage() string {
	return e.Message
}

// NewValidationError creates a 400 Bad Request error.
func NewValidationError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
		Err:     err,
	}
}

// NewNotFoundError creates a 404 Not Found error.
func NewNotFoundError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: message,
		Err:     err,
	}
}

// NewInternalError creates a 500 error. The caller sees a generic
// message; the details stay in the logs.
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: "internal server error",
		Err:     errors.Join(errors.New(message), err),
	}
}

// NewPayloadTooLargeError creates a 413 Request Entity Too Large error.
func NewPayloadTooLargeError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusRequestEntityTooLarge,
		Message: message,
		Err:     err,
	}
}
