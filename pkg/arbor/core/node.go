package core

// Func is a unit of work: a test body or a hook. Returning a non-nil error or
// panicking both count as a failure.
type Func = func() error

type NodeKind int

const (
	NodeKindTest NodeKind = iota
	NodeKindGroup
)

func (k NodeKind) String() string {
	switch k {
	case NodeKindTest:
		return "test"
	case NodeKindGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Node is an element of a test tree. It is implemented by exactly two types,
// *Test and *Group, and cannot be implemented outside this package. Consumers
// are expected to type switch over both.
type Node interface {
	Named

	// Returns where the node was declared. The zero Location means unknown.
	Location() Location

	// Returns the kind of the node.
	Kind() NodeKind

	node()
}
