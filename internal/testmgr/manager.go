package testmgr

import (
	"slices"
	"time"

	"arbor/pkg/arbor/core"

	"github.com/sirupsen/logrus"
)

// Manager records every event of an execution. It implements core.Listener.
type Manager struct {
	log       *logrus.Logger
	startTime time.Time
	testCases []*TestCase

	// Records of the nodes that have started but not finished, outermost
	// first. Events are strictly nested, so the top is always the node that
	// finishes next.
	open []*TestCase
}

func NewManager(log *logrus.Logger) *Manager {
	return &Manager{
		log:       log,
		startTime: time.Now(),
		testCases: make([]*TestCase, 0),
	}
}

func (m *Manager) Started(node core.Node) {
	tc := m.newTestCase(node)
	m.open = append(m.open, tc)
	tc.Logger().Debugf("%s (started)", tc.FullName())
}

func (m *Manager) Finished(node core.Node, result core.Result) {
	if len(m.open) == 0 {
		m.log.Warnf("Received finish event for '%s' without a start event. Ignoring.", node.Name())
		return
	}

	tc := m.open[len(m.open)-1]
	if tc.name != node.Name() || tc.kind != node.Kind() {
		m.log.Warnf(
			"Received finish event for '%s' while '%s' is running. Ignoring.",
			node.Name(),
			tc.name,
		)
		return
	}

	m.open = m.open[:len(m.open)-1]
	tc.finish(result)
}

func (m *Manager) Skipped(node core.Node, reason string) {
	m.newTestCase(node).skip(reason)
}

func (m *Manager) newTestCase(node core.Node) *TestCase {
	path := make([]string, 0, len(m.open)+1)
	for _, parent := range m.open {
		path = append(path, parent.name)
	}
	path = append(path, node.Name())

	tc := newTestCase(node, path, uint(len(m.testCases)), m)
	m.testCases = append(m.testCases, tc)
	return tc
}

// Close marks every record that never finished as an error. It returns the
// number of records it had to close.
func (m *Manager) Close() int {
	m.log.Debug("Closing test manager")

	closed := 0
	for _, tc := range slices.Backward(m.open) {
		if tc.isRunning() {
			tc.close(TestCaseStatusError, "execution ended before the node finished", nil, tc.RunTime())
			closed++
		}
	}
	m.open = nil

	return closed
}

// TestCases returns the records of every node in start order.
func (m *Manager) TestCases() []*TestCase {
	return m.testCases
}

// Tests returns only the records of test nodes.
func (m *Manager) Tests() []*TestCase {
	tests := make([]*TestCase, 0, len(m.testCases))
	for _, tc := range m.testCases {
		if tc.IsTest() {
			tests = append(tests, tc)
		}
	}

	return tests
}

func (m *Manager) StartTime() time.Time {
	return m.startTime
}

func (m *Manager) Logger() *logrus.Logger {
	return m.log
}
