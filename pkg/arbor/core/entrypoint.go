package core

// SuiteFunc constructs the root group of a suite.
type SuiteFunc = func() (*Group, error)

// EntryPoint identifies one suite that can be discovered.
type EntryPoint struct {
	// Name of the suite, unique within a runner. It is also used to name the
	// placeholder node when construction fails.
	Name string

	// Slash separated namespace used by namespace selectors, e.g. "math/arith".
	Namespace string

	// Construction routine of the suite.
	Build SuiteFunc

	// When set, the suite is not constructed and is reported as skipped with
	// this reason.
	SkipReason string
}

// Returns the namespace joined with the name, which is how entry points are
// addressed by path selectors.
func (e EntryPoint) Path() string {
	if e.Namespace == "" {
		return e.Name
	}

	return e.Namespace + "/" + e.Name
}
