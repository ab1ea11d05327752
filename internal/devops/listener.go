package devops

import (
	"arbor/pkg/arbor/core"
)

// Listener folds the output of every suite into a collapsible pipeline log
// group and raises a pipeline issue for every failed node.
type Listener struct {
	printer *Printer
	depth   int
	suite   *Group
}

func NewListener(printer *Printer) *Listener {
	return &Listener{printer: printer}
}

// Suites are the direct children of the discovery container.
const suiteDepth = 2

func (l *Listener) Started(node core.Node) {
	l.depth++
	if l.depth == suiteDepth {
		l.suite = l.printer.OpenGroup(node.Name())
	}
}

func (l *Listener) Finished(node core.Node, result core.Result) {
	if !result.Succeeded() {
		l.printer.LogError("%s '%s' failed: %s", node.Kind(), node.Name(), result.Failure)
	}

	if l.depth == suiteDepth && l.suite != nil {
		l.suite.Close()
		l.suite = nil
	}
	l.depth--
}

func (l *Listener) Skipped(node core.Node, reason string) {
	if l.depth+1 == suiteDepth {
		l.printer.LogWarning("suite '%s' skipped: %s", node.Name(), reason)
	}
}
