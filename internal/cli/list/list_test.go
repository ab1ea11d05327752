package list

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"arbor/pkg/arbor/core"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSuite struct {
	entryPoints []core.EntryPoint
	log         *logrus.Logger
}

func (s *fakeSuite) Name() string                          { return "fake" }
func (s *fakeSuite) Logger() *logrus.Logger                { return s.log }
func (s *fakeSuite) EntryPoints() []core.EntryPoint        { return s.entryPoints }
func (s *fakeSuite) EntryPoint(name string) core.EntryPoint { return core.EntryPoint{Name: name} }
func (s *fakeSuite) AzureDevops() bool                     { return false }

func newFakeSuite() *fakeSuite {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return &fakeSuite{
		log: log,
		entryPoints: []core.EntryPoint{
			{
				Name:      "add",
				Namespace: "math/arith",
				Build: core.Suite("add", func(g *core.Group) {
					g.Group("small", func(g *core.Group) {
						g.Test("twice", func() error { return nil })
						g.Test("twice", func() error { return nil })
					})
				}),
			},
			{Name: "sin", Namespace: "math/trig", SkipReason: "todo"},
			{Name: "broken", Build: func() (*core.Group, error) { return nil, errors.New("bad input") }},
		},
	}
}

func TestListSuites(t *testing.T) {
	var out bytes.Buffer
	cmd := ListSuitesCmd{}
	require.NoError(t, cmd.run(newFakeSuite(), &out))
	assert.Equal(t, "math/arith/add\nmath/trig/sin (skipped: todo)\nbroken\n", out.String())

	out.Reset()
	cmd = ListSuitesCmd{SelectionOpts{Namespaces: []string{"math"}, Recursive: true}}
	require.NoError(t, cmd.run(newFakeSuite(), &out))
	assert.Equal(t, "math/arith/add\nmath/trig/sin (skipped: todo)\n", out.String())
}

func TestListNamespaces(t *testing.T) {
	var out bytes.Buffer
	cmd := ListNamespacesCmd{}
	require.NoError(t, cmd.run(newFakeSuite(), &out))
	assert.Equal(t, "math\nmath/arith\nmath/trig\n", out.String())

	out.Reset()
	cmd = ListNamespacesCmd{Json: true, Filter: []string{"math/trig"}}
	require.NoError(t, cmd.run(newFakeSuite(), &out))
	assert.JSONEq(t, `{"math":{"trig":{}}}`, out.String())
}

func TestListTree(t *testing.T) {
	var out bytes.Buffer
	cmd := ListTreeCmd{}
	require.NoError(t, cmd.run(newFakeSuite(), &out))

	text := out.String()
	assert.Contains(t, text, "fake")
	assert.Contains(t, text, "small")
	assert.Contains(t, text, "twice\n")
	assert.Contains(t, text, "twice (2)")
	assert.Contains(t, text, "sin (skipped: todo)")
	assert.Contains(t, text, "broken (error: failed to construct suite 'broken': bad input)")
	assert.NotContains(t, text, ".go:")
}

func TestListTreeLocations(t *testing.T) {
	var out bytes.Buffer
	cmd := ListTreeCmd{SelectionOpts: SelectionOpts{Suites: []string{"add"}}, Locations: true}
	require.NoError(t, cmd.run(newFakeSuite(), &out))

	assert.Contains(t, out.String(), "[list_test.go:")
	assert.NotContains(t, out.String(), "broken")
}
