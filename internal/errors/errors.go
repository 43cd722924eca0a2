// Package errors defines coded, wrappable errors for the dashboard core.
// Every failure in the core is recoverable; codes let callers distinguish
// refused navigation from transient acquisition trouble.
package errors

import (
	"errors"
	"fmt"
)

// Error codes for categorizing failures.
const (
	ErrNav  = "NAV"  // refused navigation (not a directory, at root, empty history)
	ErrFS   = "FS"   // filesystem listing failure (permissions, removed path)
	ErrPoll = "POLL" // metrics acquisition failure
)

// Error is a structured error with a category code and optional cause.
type Error struct {
	Code    string
	Message string
	Cause   error
}

// New creates a structured error with the given code and message.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a structured error with a formatted message.
func Newf(code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with a code and message.
func Wrap(err error, code, message string) *Error {
	return &Error{Code: code, Message: message, Cause: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Cause }

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Code == code
	}
	return false
}
