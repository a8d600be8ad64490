package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrNoMapper indicates that no registered mapper accepts a remote payload.
var ErrNoMapper = errors.New("no mapper found for payload")

// ErrPreconditionFailed indicates that an operation was invoked on a record in the wrong state,
// e.g. exporting a payment that has not been persisted yet.
var ErrPreconditionFailed = errors.New("precondition failed")

// AppError carries an HTTP-ish status code and a message along with the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the cause so errors.Is/As reach sentinels and driver errors.
func (e *AppError) Unwrap() error {
	return e.Err
}
