package runner

import (
	"errors"
	"fmt"
)

type HookPhase int

const (
	PhaseBeforeAll HookPhase = iota
	PhaseBeforeEach
	PhaseAfterEach
	PhaseAfterAll
)

func (p HookPhase) String() string {
	switch p {
	case PhaseBeforeAll:
		return "beforeAll"
	case PhaseBeforeEach:
		return "beforeEach"
	case PhaseAfterEach:
		return "afterEach"
	case PhaseAfterAll:
		return "afterAll"
	default:
		return "unknown"
	}
}

// HookError wraps a failure raised by a hook.
type HookError struct {
	Phase HookPhase
	// Name of the group that registered the hook.
	Group string
	// Zero based position of the hook in its list.
	Index int
	Err   error
}

func newHookError(phase HookPhase, group string, index int, err error) *HookError {
	return &HookError{
		Phase: phase,
		Group: group,
		Index: index,
		Err:   err,
	}
}

func (he *HookError) Error() string {
	return fmt.Sprintf(
		"%s hook #%d in group '%s': %v",
		he.Phase.String(),
		he.Index+1,
		he.Group,
		he.Err,
	)
}

func (he *HookError) Unwrap() error {
	return he.Err
}

// IsHookError reports whether err, or any error it wraps, came from a hook.
func IsHookError(err error) bool {
	var he *HookError
	return errors.As(err, &he)
}
