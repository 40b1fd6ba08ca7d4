package errors

// MultiError is a list of errors, it is rendered as a bullet list by the Formatter.
type MultiError interface {
	Len() int
	Error() string
	Unwrap() error
	StackTrace() StackTrace
	Append(errs ...error)
	AppendNested(err error) NestedError
	AppendWithPrefix(err error, prefix string)
	AppendWithPrefixf(err error, format string, a ...any)
	WrappedErrors() []error
	ErrorOrNil() error
}

type multiErrorGetter interface {
	WrappedErrors() []error
}

type multiError struct {
	errs  []error
	trace StackTrace
}

func NewMultiError(errs ...error) MultiError {
	e := &multiError{trace: callers()}
	e.Append(errs...)
	return e
}

func (e *multiError) Len() int {
	return len(e.errs)
}

func (e *multiError) Error() string {
	return Format(e)
}

func (e *multiError) Unwrap() error {
	return chain(e.errs)
}

func (e *multiError) StackTrace() StackTrace {
	return e.trace
}

// Append errors, a MultiError is flattened, a nil error is skipped.
func (e *multiError) Append(errs ...error) {
	for _, err := range errs {
		switch v := err.(type) { // nolint: errorlint
		case nil:
			continue
		case multiErrorGetter:
			e.errs = append(e.errs, v.WrappedErrors()...)
		default:
			e.errs = append(e.errs, err)
		}
	}
}

// AppendNested appends a new NestedError with the main error, sub errors can be added later.
func (e *multiError) AppendNested(err error) NestedError {
	nested := NewNestedError(err)
	e.errs = append(e.errs, nested)
	return nested
}

func (e *multiError) AppendWithPrefix(err error, prefix string) {
	e.errs = append(e.errs, PrefixError(err, prefix))
}

func (e *multiError) AppendWithPrefixf(err error, format string, a ...any) {
	e.errs = append(e.errs, PrefixErrorf(err, format, a...))
}

func (e *multiError) WrappedErrors() []error {
	return e.errs
}

// ErrorOrNil returns nil if the list is empty, the only error if there is one, otherwise the MultiError.
func (e *multiError) ErrorOrNil() error {
	switch len(e.errs) {
	case 0:
		return nil
	case 1:
		return e.errs[0]
	default:
		return e
	}
}
