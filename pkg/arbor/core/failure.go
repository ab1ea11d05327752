package core

import (
	"fmt"
	"strings"
)

// Failure is the terminal failure of a node. Primary is the first error
// encountered; every error encountered afterwards during the same node's run
// is kept in Secondary, in encounter order.
type Failure struct {
	Primary   error
	Secondary []error
}

func NewFailure(primary error) *Failure {
	return &Failure{Primary: primary}
}

// Suppress attaches err as a secondary failure. Nil errors are ignored.
func (f *Failure) Suppress(err error) {
	if err == nil {
		return
	}

	f.Secondary = append(f.Secondary, err)
}

func (f *Failure) Error() string {
	if len(f.Secondary) == 0 {
		return f.Primary.Error()
	}

	suppressed := make([]string, len(f.Secondary))
	for i, err := range f.Secondary {
		suppressed[i] = err.Error()
	}

	return fmt.Sprintf("%s (suppressed: %s)", f.Primary, strings.Join(suppressed, "; "))
}

// Unwrap exposes the primary and every secondary error to errors.Is and
// errors.As.
func (f *Failure) Unwrap() []error {
	return append([]error{f.Primary}, f.Secondary...)
}

// AddFailure records err on f, creating f if err is the first failure. The
// returned pointer must replace f.
func AddFailure(f *Failure, err error) *Failure {
	if err == nil {
		return f
	}

	if f == nil {
		return NewFailure(err)
	}

	f.Suppress(err)
	return f
}
