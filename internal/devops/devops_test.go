package devops

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"arbor/internal/collector"
	"arbor/internal/runner"
	"arbor/pkg/arbor/core"

	"github.com/stretchr/testify/assert"
)

func TestGroupCloseUnwindsNestedGroups(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out)

	outer := p.OpenGroup("outer")
	p.OpenGroup("inner")
	outer.Close()

	assert.Equal(t, "##[group]outer\n##[group]inner\n##[endgroup]\n##[endgroup]\n", out.String())
	assert.Empty(t, p.groups)
}

func TestLogIssues(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out)

	p.LogError("bad %d", 1)
	p.LogWarning("meh")

	assert.Equal(t,
		"##vso[task.logissue type=error]bad 1\n##vso[task.logissue type=warning]meh\n",
		out.String(),
	)
}

func TestListenerGroupsSuites(t *testing.T) {
	var out bytes.Buffer
	listener := NewListener(NewPrinter(&out))

	root := collector.Discover("run", []core.EntryPoint{
		{
			Name: "first",
			Build: core.Suite("first", func(g *core.Group) {
				g.Group("nested", func(g *core.Group) {
					g.Test("fails", func() error { return errors.New("nope") })
				})
			}),
		},
		{Name: "second", SkipReason: "not today"},
	}, nil)
	runner.New(listener, nil).Run(root)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, []string{
		"##[group]first",
		"##vso[task.logissue type=error]test 'fails' failed: nope",
		"##[endgroup]",
		"##vso[task.logissue type=warning]suite 'second' skipped: not today",
	}, lines)
}
