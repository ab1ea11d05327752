package arbor

import (
	"arbor/internal/arborerror"
	"arbor/internal/collector"
	"arbor/internal/runner"
	"arbor/pkg/arbor/core"
	"arbor/pkg/arbor/suite"

	"github.com/sirupsen/logrus"
)

type Node = core.Node
type Group = core.Group
type Test = core.Test
type Func = core.Func
type Location = core.Location

type EntryPoint = core.EntryPoint
type SuiteFunc = core.SuiteFunc

type Listener = core.Listener
type Listeners = core.Listeners
type Result = core.Result
type Failure = core.Failure

type PanicError = arborerror.PanicError
type HookError = runner.HookError
type ConstructionError = collector.ConstructionError

type SuiteContext = core.SuiteContext
type LoggerProvider = core.LoggerProvider

var (
	// Builds the root group of a suite. Panics inside the block propagate.
	NewSuite = core.NewSuite

	// Wraps NewSuite into a construction routine for an EntryPoint.
	Suite = core.Suite
)

// Creates a new runner with the given name, parsing the command line.
func CreateRunner(name string) *suite.Runner {
	return suite.CreateRunner(name)
}

// Execute discovers the given entry points under a container named name and
// runs them, reporting every event to listener. It never fails: construction
// and execution failures are reported through the listener.
func Execute(name string, listener Listener, log *logrus.Logger, entryPoints ...EntryPoint) {
	root := collector.Discover(name, entryPoints, log)
	runner.New(listener, log).Run(root)
}
