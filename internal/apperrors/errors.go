package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates valid credentials with insufficient privileges.
var ErrForbidden = errors.New("forbidden")

// AppError carries an HTTP status code alongside a user-facing message.
// The wrapped error (if any) is kept for logging and errors.Is checks but
// never serialized to clients.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with an explicit status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message, Err: ErrUnauthorized}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: message, Err: ErrForbidden}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

func NewInternalServerError(message string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message, Err: nil}
}

// NewBadGatewayError is used when an upstream dependency (payment gateway,
// OAuth provider) fails or is unreachable.
func NewBadGatewayError(message string) *AppError {
	return &AppError{Code: http.StatusBadGateway, Message: message, Err: nil}
}
