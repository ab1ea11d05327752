package core

import (
	"errors"
	"fmt"
	"slices"
)

// ErrSealed is the panic value used when a group is modified after its
// construction block has returned.
var ErrSealed = errors.New("group is sealed: test trees cannot be modified after construction")

// Group is an inner node of the test tree. Children and hooks are populated
// through the builder methods while the group's construction block runs; the
// group is read-only afterwards.
type Group struct {
	name     string
	location Location
	children []Node

	beforeEach []Func
	afterEach  []Func
	beforeAll  []Func
	afterAll   []Func

	sealed     bool
	skipReason string
}

// NewSuite creates the root group of a suite and runs build against it. A panic
// inside build propagates to the caller and no group is returned.
func NewSuite(name string, build func(*Group)) *Group {
	return newSuite(name, callerLocation(0), build)
}

func newSuite(name string, location Location, build func(*Group)) *Group {
	root := &Group{
		name:     name,
		location: location,
	}

	if build != nil {
		build(root)
	}
	root.sealed = true

	return root
}

// NewSkippedGroup creates an empty, sealed group that the engine reports as
// skipped with the given reason instead of executing it.
func NewSkippedGroup(name string, reason string) *Group {
	return &Group{
		name:       name,
		sealed:     true,
		skipReason: reason,
	}
}

// NewContainer creates a sealed group holding already built nodes. It is used
// to gather discovered suites under a single root.
func NewContainer(name string, children []Node) *Group {
	return &Group{
		name:     name,
		children: slices.Clone(children),
		sealed:   true,
	}
}

// Suite wraps NewSuite into a construction routine suitable for an EntryPoint.
func Suite(name string, build func(*Group)) SuiteFunc {
	return SuiteAt(name, callerLocation(0), build)
}

// SuiteAt is Suite with an explicit declaration location, for wrappers that
// register suites on behalf of their caller.
func SuiteAt(name string, location Location, build func(*Group)) SuiteFunc {
	return func() (*Group, error) {
		return newSuite(name, location, build), nil
	}
}

func (g *Group) Name() string {
	return g.name
}

func (g *Group) Location() Location {
	return g.location
}

func (g *Group) Kind() NodeKind {
	return NodeKindGroup
}

func (g *Group) node() {}

// Returns the children of the group in declaration order.
func (g *Group) Children() []Node {
	return slices.Clone(g.children)
}

func (g *Group) BeforeEachHooks() []Func {
	return slices.Clone(g.beforeEach)
}

func (g *Group) AfterEachHooks() []Func {
	return slices.Clone(g.afterEach)
}

func (g *Group) BeforeAllHooks() []Func {
	return slices.Clone(g.beforeAll)
}

func (g *Group) AfterAllHooks() []Func {
	return slices.Clone(g.afterAll)
}

// SkipReason is non-empty only for placeholders created by NewSkippedGroup.
func (g *Group) SkipReason() string {
	return g.skipReason
}

func (g *Group) Sealed() bool {
	return g.sealed
}

// Test declares a test in this group.
func (g *Group) Test(name string, body Func) {
	g.mustBeOpen()
	g.children = append(g.children, &Test{
		name:     name,
		location: callerLocation(0),
		body:     body,
	})
}

// Group declares a nested group. The block runs immediately with the new group
// as its argument; the group is added only once the block returns. If the
// block panics, nothing is added and the panic propagates.
func (g *Group) Group(name string, block func(*Group)) {
	g.mustBeOpen()
	child := &Group{
		name:     name,
		location: callerLocation(0),
	}

	if block != nil {
		block(child)
	}
	child.sealed = true

	g.children = append(g.children, child)
}

// BeforeEach registers a hook run before every test below this group.
func (g *Group) BeforeEach(hook Func) {
	g.mustBeOpen()
	g.beforeEach = append(g.beforeEach, hook)
}

// AfterEach registers a hook run after every test below this group.
func (g *Group) AfterEach(hook Func) {
	g.mustBeOpen()
	g.afterEach = append(g.afterEach, hook)
}

// BeforeAll registers a hook run once before any child of this group.
func (g *Group) BeforeAll(hook Func) {
	g.mustBeOpen()
	g.beforeAll = append(g.beforeAll, hook)
}

// AfterAll registers a hook run once after every child of this group.
func (g *Group) AfterAll(hook Func) {
	g.mustBeOpen()
	g.afterAll = append(g.afterAll, hook)
}

func (g *Group) mustBeOpen() {
	if g.sealed {
		panic(fmt.Errorf("%w (group '%s')", ErrSealed, g.name))
	}
}
