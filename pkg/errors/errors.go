// Package errors provides structured error types for structkit.
//
// Every container in this module reports failures through [Error] values
// carrying a machine-readable [Code]. The codes map one-to-one onto the
// failure kinds a caller has to distinguish:
//   - INVALID_ARGUMENT: a missing (nil) element or a non-positive capacity
//   - EMPTY_STACK: popping a stack that holds no elements
//   - NO_SUCH_ELEMENT: first/last of an empty list, statistics of empty text
//   - INDEX_OUT_OF_BOUNDS: indexed access outside the documented range
//   - RESOURCE_ACCESS: a file resource that is missing or unreadable
//
// # Usage
//
//	v, err := s.Pop()
//	if errors.Is(err, errors.ErrCodeEmptyStack) {
//	    // nothing to pop
//	}
//
//	// Wrap existing errors, keeping the cause for diagnostics
//	err := errors.Wrap(errors.ErrCodeResourceAccess, origErr, "cannot read %s", name)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Container contract violations
	ErrCodeInvalidArgument  Code = "INVALID_ARGUMENT"
	ErrCodeEmptyStack       Code = "EMPTY_STACK"
	ErrCodeNoSuchElement    Code = "NO_SUCH_ELEMENT"
	ErrCodeIndexOutOfBounds Code = "INDEX_OUT_OF_BOUNDS"

	// Collaborator failures
	ErrCodeResourceAccess Code = "RESOURCE_ACCESS"
	ErrCodeNotFound       Code = "NOT_FOUND"

	// Input validation for scripts and configuration
	ErrCodeInvalidScript Code = "INVALID_SCRIPT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidInput  Code = "INVALID_INPUT"

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

// OutOfBounds reports an index outside [0, limit) or [0, limit] depending on
// the operation. It is shared by both list implementations so that their
// messages match exactly.
func OutOfBounds(index, size int) *Error {
	return New(ErrCodeIndexOutOfBounds, "index %d out of bounds for size %d", index, size)
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
