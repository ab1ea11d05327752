package core

// Test is a leaf of the test tree.
type Test struct {
	name     string
	location Location
	body     Func

	// Set only on placeholders standing in for a suite that could not be
	// constructed.
	failure error
}

// NewFailedTest creates a test that reports err as its failure when executed,
// without running anything.
func NewFailedTest(name string, location Location, err error) *Test {
	return &Test{
		name:     name,
		location: location,
		failure:  err,
	}
}

func (t *Test) Name() string {
	return t.name
}

func (t *Test) Location() Location {
	return t.location
}

func (t *Test) Kind() NodeKind {
	return NodeKindTest
}

func (t *Test) node() {}

// Body returns the unit of work of the test. It is nil for failed
// placeholders.
func (t *Test) Body() Func {
	return t.body
}

// Failure returns the stored error of a failed placeholder, nil otherwise.
func (t *Test) Failure() error {
	return t.failure
}
