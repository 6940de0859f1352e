package scheme

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidScheme = errors.New("invalid scheme")
	ErrRead          = errors.New("row read failed")
	ErrCoercion      = errors.New("coercion failed")
	ErrMissingKey    = errors.New("missing row key")
	ErrFieldNotFound = errors.New("field not found")
	ErrSink          = errors.New("row write failed")
)

// Error wraps a sentinel error with additional context
type Error struct {
	Err     error  // The underlying sentinel error
	Context string // Additional error context
	Cause   error  // The error that triggered this one, if any
}

// Error satisfies the error interface
func (e *Error) Error() string {
	msg := e.Err.Error()
	if e.Context != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Context)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap implements the errors.Unwrap interface for compatibility with errors.Is/As. Both the
// sentinel and the cause are reachable.
func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// newError creates a new scheme error with context
func newError(err error, format string, args ...interface{}) *Error {
	return &Error{
		Err:     err,
		Context: fmt.Sprintf(format, args...),
	}
}

// wrapError is newError with the error that caused it.
func wrapError(err, cause error, format string, args ...interface{}) *Error {
	e := newError(err, format, args...)
	e.Cause = cause
	return e
}
