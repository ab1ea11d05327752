package arborerror

import (
	"fmt"
	"runtime/debug"
)

// PanicError is produced when user code panics instead of returning an error.
type PanicError struct {
	Value any
	Stack []byte
}

func NewPanicError(value any, stack []byte) PanicError {
	return PanicError{
		Value: value,
		Stack: stack,
	}
}

func (pe PanicError) Error() string {
	return fmt.Sprintf("panic occurred: %v", pe.Value)
}

// Unwrap returns the panic value when it is an error, so that panic(err) can
// still be matched with errors.Is.
func (pe PanicError) Unwrap() error {
	if err, ok := pe.Value.(error); ok {
		return err
	}

	return nil
}

// CatchPanic runs f and converts a panic into a PanicError.
func CatchPanic(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewPanicError(r, debug.Stack())
		}
	}()

	return f()
}
