// Package errors provides structured error types for pathviz.
//
// Every input-validation failure carries a machine-readable [Code] so the CLI,
// the HTTP API, and library callers can react without string matching:
//
//   - INVALID_DIMENSION: node count below two
//   - INVALID_WEIGHT: a matrix cell that is not a non-negative integer
//   - INVALID_NODE: a start or end index outside [0, size)
//
// An unreachable destination is not an error. It is reported through the
// shortest-path result instead.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidNode, "start node %d out of range", start)
//	if errors.Is(err, errors.ErrCodeInvalidNode) {
//	    // re-prompt
//	}
//
//	err = errors.Wrap(errors.ErrCodeInvalidWeight, parseErr, "cell (%d,%d)", i, j)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidDimension Code = "INVALID_DIMENSION"
	ErrCodeInvalidWeight    Code = "INVALID_WEIGHT"
	ErrCodeInvalidNode      Code = "INVALID_NODE"
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"

	// Resource not found errors
	ErrCodeNotFound        Code = "NOT_FOUND"
	ErrCodeSessionNotFound Code = "SESSION_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsValidation reports whether err is one of the input-validation codes.
// Callers use it to decide between re-prompting and failing hard.
func IsValidation(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidDimension, ErrCodeInvalidWeight, ErrCodeInvalidNode,
		ErrCodeInvalidInput, ErrCodeInvalidFormat:
		return true
	}
	return false
}
