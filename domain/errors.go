package domain

import (
	"errors"
	"fmt"

	"apartment-journey/pkg/errcodes"
)

// AppError is a domain error carrying a stable code for the transport layer.
type AppError struct {
	Code    errcodes.ErrorCode
	Message string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

func (e *AppError) ErrorCode() errcodes.ErrorCode {
	return e.Code
}

func NewError(code errcodes.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func WrapError(err error, code errcodes.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetCode extracts the code of the first AppError in the chain.
func GetCode(err error) (errcodes.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}
