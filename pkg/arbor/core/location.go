package core

import (
	"fmt"
	"runtime"
)

// Location points at the place a node was declared. It is only ever used for
// reporting.
type Location struct {
	File string `yaml:"file,omitempty"`
	Line int    `yaml:"line,omitempty"`
}

func (l Location) IsZero() bool {
	return l.File == "" && l.Line == 0
}

func (l Location) String() string {
	if l.IsZero() {
		return ""
	}

	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Returns the location of the caller `skip` frames above the function calling
// callerLocation. A frame that cannot be resolved yields the zero Location.
func callerLocation(skip int) (loc Location) {
	defer func() {
		if recover() != nil {
			loc = Location{}
		}
	}()

	_, file, line, ok := runtime.Caller(skip + 2)
	if !ok {
		return Location{}
	}

	return Location{File: file, Line: line}
}

// Caller returns the location of the caller `skip` frames above the function
// calling Caller.
func Caller(skip int) Location {
	return callerLocation(skip + 1)
}
