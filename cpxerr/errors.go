// Package cpxerr defines the failure taxonomy for cpx-text.
//
// Every error returned by the codec or the CLI maps to exactly one
// FailureClass, which determines the exit code and lets callers verify
// failure classification, not just "did it fail."
package cpxerr

import "fmt"

// FailureClass is a stable failure category.
type FailureClass string

const (
	BadConfig     FailureClass = "BAD_CONFIG"
	ParseMismatch FailureClass = "PARSE_MISMATCH"
	CLIUsage      FailureClass = "CLI_USAGE"
	InternalIO    FailureClass = "INTERNAL_IO"
	InternalError FailureClass = "INTERNAL_ERROR"
)

// ExitCode returns the process exit code for this failure class.
func (fc FailureClass) ExitCode() int {
	switch fc {
	case InternalIO, InternalError:
		return 10
	default:
		return 2
	}
}

// Error is the structured error type for all cpx-text failures.
//
// Offset is a byte offset into the input being parsed, or -1 when the
// failure is not tied to a position (construction and usage errors).
type Error struct {
	Class   FailureClass
	Offset  int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var s string
	if e.Offset >= 0 {
		s = fmt.Sprintf("cpxerr: %s at index %d: %s", e.Class, e.Offset, e.Message)
	} else {
		s = fmt.Sprintf("cpxerr: %s: %s", e.Class, e.Message)
	}
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given class and message.
func New(class FailureClass, offset int, message string) *Error {
	return &Error{Class: class, Offset: offset, Message: message}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(class FailureClass, offset int, message string, cause error) *Error {
	return &Error{Class: class, Offset: offset, Message: message, Cause: cause}
}
