package domain

import (
	"errors"
	"fmt"
)

// ErrorCode is the machine-readable code returned to API clients.
type ErrorCode string

const (
	CodeValidation        ErrorCode = "VALIDATION_ERROR"
	CodeInReview          ErrorCode = "IN_REVIEW"
	CodeUnauthorized      ErrorCode = "UNAUTHORIZED"
	CodeForbidden         ErrorCode = "FORBIDDEN"
	CodeNotFound          ErrorCode = "NOT_FOUND"
	CodeConflict          ErrorCode = "CONFLICT"
	CodeInvalidTransition ErrorCode = "INVALID_TRANSITION"
	CodeInternal          ErrorCode = "INTERNAL_ERROR"
)

// Error is a failure that is safe to report to the caller.
type Error struct {
	Code    ErrorCode
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates an Error with the given code and message.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// NewValidationError creates a VALIDATION_ERROR with optional field details.
func NewValidationError(message string, fields map[string]string) *Error {
	return &Error{Code: CodeValidation, Message: message, Fields: fields}
}

// ErrUnauthorized is returned when a request has no valid session.
var ErrUnauthorized = NewError(CodeUnauthorized, "Authentication required")

// ErrorCodeOf returns the code of err, or CodeInternal if err is not an *Error.
func ErrorCodeOf(err error) ErrorCode {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
