package runner

import (
	"fmt"
	"time"

	"arbor/internal/arborerror"
	"arbor/pkg/arbor/core"

	"github.com/sirupsen/logrus"
)

// Runner executes a test tree depth first, reporting to a listener.
type Runner struct {
	listener core.Listener
	log      *logrus.Logger
}

func New(listener core.Listener, log *logrus.Logger) *Runner {
	if listener == nil {
		listener = core.NopListener{}
	}

	if log == nil {
		log = logrus.New()
	}

	return &Runner{
		listener: listener,
		log:      log,
	}
}

// Run executes the tree rooted at root. Failures are reported through the
// listener and never returned.
func (r *Runner) Run(root core.Node) {
	r.visit(root, nil)
}

// Visits a node. path holds the ancestors of node, root first.
func (r *Runner) visit(node core.Node, path []*core.Group) {
	switch n := node.(type) {
	case *core.Group:
		r.executeGroup(n, path)
	case *core.Test:
		r.executeTest(n, path)
	default:
		panic(fmt.Sprintf("unknown node type %T", node))
	}
}

func (r *Runner) executeGroup(group *core.Group, path []*core.Group) {
	if reason := group.SkipReason(); reason != "" {
		r.log.Debugf("%s (skipped: %s)", group.Name(), reason)
		r.listener.Skipped(group, reason)
		return
	}

	r.log.Debugf("%s (started)", group.Name())
	r.listener.Started(group)
	start := time.Now()

	err := runSetupHooks(PhaseBeforeAll, group)
	if err != nil {
		// Nothing below this group ran, so its afterAll hooks must not run
		// either.
		r.finish(group, core.NewFailure(err), start)
		return
	}

	// Copy so that siblings never share the backing array.
	childPath := make([]*core.Group, len(path)+1)
	copy(childPath, path)
	childPath[len(path)] = group

	for _, child := range group.Children() {
		r.visit(child, childPath)
	}

	var failure *core.Failure
	for _, err := range runTeardownHooks(PhaseAfterAll, group) {
		failure = core.AddFailure(failure, err)
	}

	r.finish(group, failure, start)
}

func (r *Runner) executeTest(test *core.Test, path []*core.Group) {
	r.log.Debugf("%s (started)", test.Name())
	r.listener.Started(test)
	start := time.Now()

	if err := test.Failure(); err != nil {
		r.finish(test, core.NewFailure(err), start)
		return
	}

	var failure *core.Failure

	// Index in path of the deepest group whose beforeEach hooks were
	// attempted. afterEach hooks unwind from there.
	reached := -1
	for i, group := range path {
		reached = i
		if err := runSetupHooks(PhaseBeforeEach, group); err != nil {
			failure = core.AddFailure(failure, err)
			break
		}
	}

	if failure == nil {
		failure = core.AddFailure(failure, runBody(test))
	}

	for i := reached; i >= 0; i-- {
		for _, err := range runTeardownHooks(PhaseAfterEach, path[i]) {
			failure = core.AddFailure(failure, err)
		}
	}

	r.finish(test, failure, start)
}

func (r *Runner) finish(node core.Node, failure *core.Failure, start time.Time) {
	result := core.NewResult(failure, time.Since(start))

	entry := r.log.WithField("duration", result.Duration)
	if failure != nil {
		entry = entry.WithError(failure)
	}
	entry.Debugf("%s (%s)", node.Name(), result.Status.String())

	r.listener.Finished(node, result)
}

func runBody(test *core.Test) error {
	body := test.Body()
	if body == nil {
		return nil
	}

	return runCatchPanic(body)
}

// Runs the hooks of a setup phase in order and stops at the first failure.
func runSetupHooks(phase HookPhase, group *core.Group) error {
	hooks := hooksFor(phase, group)
	for i, hook := range hooks {
		if err := runCatchPanic(hook); err != nil {
			return newHookError(phase, group.Name(), i, err)
		}
	}

	return nil
}

// Runs every hook of a teardown phase and returns all failures in order.
func runTeardownHooks(phase HookPhase, group *core.Group) []error {
	var errs []error
	hooks := hooksFor(phase, group)
	for i, hook := range hooks {
		if err := runCatchPanic(hook); err != nil {
			errs = append(errs, newHookError(phase, group.Name(), i, err))
		}
	}

	return errs
}

func hooksFor(phase HookPhase, group *core.Group) []core.Func {
	switch phase {
	case PhaseBeforeAll:
		return group.BeforeAllHooks()
	case PhaseBeforeEach:
		return group.BeforeEachHooks()
	case PhaseAfterEach:
		return group.AfterEachHooks()
	case PhaseAfterAll:
		return group.AfterAllHooks()
	default:
		panic(fmt.Sprintf("unknown hook phase %d", phase))
	}
}

func runCatchPanic(f func() error) error {
	if f == nil {
		return nil
	}

	return arborerror.CatchPanic(f)
}
