package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Pipeline error kinds. EmptyInput and the two verdict errors are recoverable:
// the validation service turns them into an invalid ValidationResult. Transport
// errors propagate to the caller untouched.
var (
	ErrEmptyInput        = errors.New("no text to normalize")
	ErrMalformedResponse = errors.New("malformed verifier response")
	ErrVerifierParse     = errors.New("verifier response parse failed")
	ErrTransport         = errors.New("verifier transport failed")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInternal          = errors.New("internal error")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
