package list

import (
	"fmt"
	"io"
	"path/filepath"

	"arbor/internal/collector"
	"arbor/pkg/arbor/core"

	"github.com/ddddddO/gtree"
)

type ListTreeCmd struct {
	SelectionOpts `embed:""`
	Locations     bool `short:"l" help:"Show where each node was declared"`
}

func (cmd *ListTreeCmd) Run(suite core.SuiteContext) error {
	return cmd.run(suite, nil)
}

func (cmd *ListTreeCmd) run(suite core.SuiteContext, w io.Writer) error {
	log := suite.Logger()
	log.Info("Building test trees")

	selected, err := selectionFrom(cmd.SelectionOpts).Select(suite.EntryPoints())
	if err != nil {
		return err
	}

	root := collector.Discover(suite.Name(), selected, log)

	tree := gtree.NewRoot(root.Name())
	labels := newLabeler()
	for _, child := range root.Children() {
		cmd.addNode(tree, child, labels)
	}

	if err := gtree.OutputFromRoot(writerOrStdout(w), tree); err != nil {
		return fmt.Errorf("failed to render test tree: %w", err)
	}

	return nil
}

func (cmd *ListTreeCmd) addNode(parent *gtree.Node, node core.Node, labels *labeler) {
	label := node.Name()

	switch n := node.(type) {
	case *core.Test:
		if err := n.Failure(); err != nil {
			label = fmt.Sprintf("%s (error: %s)", label, err)
		}
	case *core.Group:
		if reason := n.SkipReason(); reason != "" {
			label = fmt.Sprintf("%s (skipped: %s)", label, reason)
		}
	default:
		panic(fmt.Sprintf("unknown node type %T", node))
	}

	if cmd.Locations && !node.Location().IsZero() {
		label = fmt.Sprintf("%s [%s:%d]", label, filepath.Base(node.Location().File), node.Location().Line)
	}

	current := parent.Add(labels.unique(parent, label))

	if group, ok := node.(*core.Group); ok {
		for _, child := range group.Children() {
			cmd.addNode(current, child, labels)
		}
	}
}

// gtree merges siblings with the same text, while test trees allow duplicate
// names. Repeated labels get a counter.
type labeler struct {
	seen map[*gtree.Node]map[string]int
}

func newLabeler() *labeler {
	return &labeler{seen: make(map[*gtree.Node]map[string]int)}
}

func (l *labeler) unique(parent *gtree.Node, label string) string {
	siblings, ok := l.seen[parent]
	if !ok {
		siblings = make(map[string]int)
		l.seen[parent] = siblings
	}

	siblings[label]++
	if count := siblings[label]; count > 1 {
		return fmt.Sprintf("%s (%d)", label, count)
	}

	return label
}
