// Package errors extends the standard library errors:
// each error is created with a stack trace,
// multiple errors can be grouped to MultiError and NestedError,
// and the Formatter converts an error tree to a readable bullet list.
package errors

import (
	"errors"
	"fmt"
	"runtime"
)

// StackTrace is a list of program counters from the error origin.
type StackTrace []uintptr

type stackTracer interface {
	StackTrace() StackTrace
}

// withStack wraps an error with a stack trace from the place where it was created.
type withStack struct {
	err   error
	trace StackTrace
}

func New(msg string) error {
	return &withStack{err: errors.New(msg), trace: callers()}
}

func Errorf(format string, a ...any) error {
	return &withStack{err: fmt.Errorf(format, a...), trace: callers()}
}

// WithStack wraps the error with a stack trace, if it doesn't have one.
func WithStack(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(stackTracer); ok { // nolint: errorlint
		return err
	}
	return &withStack{err: err, trace: callers()}
}

func (e *withStack) Error() string {
	return e.err.Error()
}

func (e *withStack) Unwrap() error {
	return e.err
}

func (e *withStack) StackTrace() StackTrace {
	return e.trace
}

// chain of errors, the Unwrap result for grouped errors.
type chain []error

func (c chain) Error() string {
	if len(c) == 0 {
		return ""
	}
	return c[0].Error()
}

func (c chain) Unwrap() []error {
	return c
}

func callers() StackTrace {
	const depth = 16
	var pcs [depth]uintptr
	// Skip runtime.Callers, this function and the public constructor.
	n := runtime.Callers(3, pcs[:])
	return pcs[0:n]
}
