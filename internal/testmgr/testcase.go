package testmgr

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"arbor/internal/arborerror"
	"arbor/internal/collector"
	"arbor/internal/runner"
	"arbor/pkg/arbor/core"

	"github.com/sirupsen/logrus"
)

// TestCase is the record of one node of an execution, tests and groups alike.
type TestCase struct {
	name      string
	index     uint
	path      []string
	kind      core.NodeKind
	location  core.Location
	parent    *Manager
	startTime time.Time
	endTime   time.Time
	duration  time.Duration
	status    TestCaseStatus
	reason    string
	failure   *core.Failure
	log       *logrus.Logger
	logBuffer bytes.Buffer
}

// Implementer of logrus.Hook interface to tee log messages from the test case
// logger to the run logger
type testCaseLogTee struct {
	runLogger  *logrus.Logger
	testCaseId string
}

func (tee testCaseLogTee) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (tee testCaseLogTee) Fire(entry *logrus.Entry) error {
	// Make a shallow copy so that we can modify the logger pointer
	newEntry := tee.runLogger.WithFields(entry.Data)
	newEntry.Caller = entry.Caller
	newEntry.Log(entry.Level, fmt.Sprintf("[%s] > %s", tee.testCaseId, entry.Message))
	return nil
}

func newTestCase(node core.Node, path []string, index uint, parent *Manager) *TestCase {
	tc := &TestCase{
		name:      node.Name(),
		index:     index,
		path:      path,
		kind:      node.Kind(),
		location:  node.Location(),
		parent:    parent,
		startTime: time.Now(),
		status:    TestCaseStatusRunning,
		log:       logrus.New(),
	}

	tc.log.SetLevel(logrus.TraceLevel)
	tc.log.SetOutput(&tc.logBuffer)
	tc.log.SetFormatter(&logrus.TextFormatter{
		ForceColors:      true,
		DisableTimestamp: false,
	})
	tc.log.AddHook(testCaseLogTee{
		runLogger:  parent.log,
		testCaseId: tc.id(),
	})

	return tc
}

func (tc *TestCase) Status() TestCaseStatus {
	return tc.status
}

func (tc *TestCase) id() string {
	return fmt.Sprintf("%04d:%s", tc.index, tc.name)
}

func (tc *TestCase) isRunning() bool {
	return tc.status == TestCaseStatusRunning
}

func (tc *TestCase) LogLines() []string {
	rawLines := bytes.Split(bytes.TrimRight(tc.logBuffer.Bytes(), "\n"), []byte("\n"))
	lines := make([]string, len(rawLines))
	for i, line := range rawLines {
		lines[i] = string(line)
	}

	return lines
}

func (tc *TestCase) Name() string {
	return tc.name
}

// Path returns the names of the node and its ancestors, root first.
func (tc *TestCase) Path() []string {
	return tc.path
}

// FullName joins the path into a single slash separated name.
func (tc *TestCase) FullName() string {
	return strings.Join(tc.path, "/")
}

// Suite returns the name of the suite the node belongs to: the first level
// below the discovery container, or the root itself for shallow records.
func (tc *TestCase) Suite() string {
	if len(tc.path) > 1 {
		return tc.path[1]
	}

	return tc.path[0]
}

func (tc *TestCase) Kind() core.NodeKind {
	return tc.kind
}

func (tc *TestCase) IsTest() bool {
	return tc.kind == core.NodeKindTest
}

func (tc *TestCase) Location() core.Location {
	return tc.location
}

func (tc *TestCase) Failure() *core.Failure {
	return tc.failure
}

func (tc *TestCase) Reason() string {
	return tc.reason
}

func (tc *TestCase) StartTime() time.Time {
	return tc.startTime
}

func (tc *TestCase) RunTime() time.Duration {
	if tc.status == TestCaseStatusRunning {
		return time.Since(tc.startTime)
	}

	return tc.duration
}

func (tc *TestCase) Logger() *logrus.Logger {
	return tc.log
}

func (tc *TestCase) finish(result core.Result) {
	if result.Succeeded() {
		tc.close(TestCaseStatusPassed, "", nil, result.Duration)
		return
	}

	tc.close(classify(result.Failure), "", result.Failure, result.Duration)
}

func (tc *TestCase) skip(reason string) {
	tc.close(TestCaseStatusSkipped, reason, nil, 0)
}

func (tc *TestCase) close(status TestCaseStatus, reason string, failure *core.Failure, d time.Duration) {
	if tc.status != TestCaseStatusRunning {
		tc.parent.log.Warnf(
			"Attempted to close test case '%s' with status '%s', but it was already closed with status '%s'. Ignoring.",
			tc.name,
			status.String(),
			tc.status.String(),
		)
		return
	}

	if status == TestCaseStatusRunning {
		panic("cannot close test case with status running")
	}

	tc.status = status
	tc.reason = reason
	tc.failure = failure
	tc.endTime = time.Now()
	tc.duration = d

	// Log the status to the test case logger
	localEntry := logrus.NewEntry(tc.log)

	if reason != "" {
		localEntry = localEntry.WithField("reason", reason)
	}

	if !tc.location.IsZero() {
		localEntry = localEntry.WithField("location", tc.location.String())
	}

	if failure != nil {
		localEntry.WithError(failure.Primary).Log(tc.status.logLevel(), tc.status.String())
		for _, secondary := range failure.Secondary {
			localEntry.WithError(secondary).Log(tc.status.logLevel(), "suppressed")
		}
	} else {
		localEntry.Log(tc.status.logLevel(), tc.status.String())
	}

	// Close this logger
	tc.log.Out = io.Discard
	tc.log.ReplaceHooks(make(logrus.LevelHooks))

	// Log the status to the run logger
	tc.parent.log.
		WithField("node", tc.FullName()).
		WithField("status", tc.status.String()).
		Logf(tc.status.logLevel(), "%s: %s", tc.Name(), tc.status.ColorString())
}

// A failure whose primary error did not come from the test's own assertions
// is reported as an error rather than a failure.
func classify(failure *core.Failure) TestCaseStatus {
	if failure == nil {
		return TestCaseStatusPassed
	}

	var pe arborerror.PanicError
	var ce *collector.ConstructionError
	if runner.IsHookError(failure.Primary) ||
		errors.As(failure.Primary, &ce) ||
		errors.As(failure.Primary, &pe) {
		return TestCaseStatusError
	}

	return TestCaseStatusFailed
}
