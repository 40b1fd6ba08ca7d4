package errors

import (
	"errors"
)

// Is, As, Unwrap and Join mirror the standard library,
// so the package can be used as a drop-in replacement.

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

func Unwrap(err error) error {
	return errors.Unwrap(err)
}

func Join(errs ...error) error {
	return errors.Join(errs...)
}
