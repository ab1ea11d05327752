package core

import "time"

type Status int

const (
	StatusSucceeded Status = iota
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of a finished node.
type Result struct {
	Status   Status
	Failure  *Failure
	Duration time.Duration
}

// NewResult builds the result for a node that ran for d and ended with
// failure, which is nil on success.
func NewResult(failure *Failure, d time.Duration) Result {
	if failure == nil {
		return Result{Status: StatusSucceeded, Duration: d}
	}

	return Result{Status: StatusFailed, Failure: failure, Duration: d}
}

func (r Result) Succeeded() bool {
	return r.Status == StatusSucceeded
}
