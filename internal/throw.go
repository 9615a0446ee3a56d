package internal

import "github.com/pkg/errors"

// Degenerate geometry never panics; it is reported through ok flags and
// indeterminate results. Precondition violations are programmer errors, so we
// panic with a PreconditionError, and the public API recovers to convert to an
// error.

type PreconditionError struct {
	err error
}

func (e *PreconditionError) Error() string {
	return e.err.Error()
}

func (e *PreconditionError) Unwrap() error {
	return e.err
}

// Panic with a PreconditionError.
func Fatalf(format string, args ...interface{}) {
	panic(&PreconditionError{errors.Errorf(format, args...)})
}

// HandlePanicRecover converts a recovered PreconditionError into an error.
// Any other panic value is re-raised.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if preconditionError, ok := r.(*PreconditionError); ok {
			return preconditionError
		}
		panic(r)
	}
	return nil
}
