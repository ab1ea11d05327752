package suite

import (
	"fmt"
	"slices"

	"arbor/internal/cli"
	"arbor/internal/config"
	"arbor/pkg/arbor/core"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
)

// Runner holds the entry points of every registered suite and runs the
// command selected on the command line against them.
type Runner struct {
	name        string
	entryPoints []core.EntryPoint
	ctx         *kong.Context
	settings    config.Settings
	Log         *logrus.Logger
}

func CreateRunner(name string) *Runner {
	ctx, global := cli.ParseCommandLine(name)

	logger := newLogger()
	settings, err := global.Settings()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	r := newRunner(name, settings, logger)
	r.ctx = ctx
	return r
}

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors: true,
	})
	return logger
}

func newRunner(name string, settings config.Settings, logger *logrus.Logger) *Runner {
	// Settings are validated on load.
	level, _ := settings.LogLevel()
	logger.SetLevel(level)

	logger.Infof("Creating runner '%s'", name)

	return &Runner{
		name:        name,
		entryPoints: make([]core.EntryPoint, 0),
		settings:    settings,
		Log:         logger,
	}
}

// Run the command selected on the command line.
func (r *Runner) Run() {
	if r.ctx == nil {
		r.Log.Fatalf("Runner '%s' not initialized", r.name)
	}

	r.Log.Infof("Running '%s' - %d suites registered.", r.name, len(r.entryPoints))
	r.ctx.BindTo(r, (*core.SuiteContext)(nil))
	r.ctx.Bind(&r.settings)
	r.reportExitStatus(r.ctx.Run())
}

// Adds an entry point to the runner. Suite names must be unique.
func (r *Runner) AddEntryPoint(entryPoint core.EntryPoint) {
	if slices.ContainsFunc(r.entryPoints, func(existing core.EntryPoint) bool {
		return existing.Name == entryPoint.Name
	}) {
		r.Log.Fatalf("Suite '%s' already exists", entryPoint.Name)
	}

	r.Log.Debugf("Registering suite '%s'", entryPoint.Path())
	if entryPoint.SkipReason != "" {
		r.Log.Tracef("Skip reason: %s", entryPoint.SkipReason)
	}
	r.entryPoints = append(r.entryPoints, entryPoint)
}

// Registers a suite built by build under the given namespace.
func (r *Runner) AddSuite(namespace string, name string, build func(*core.Group)) {
	r.AddEntryPoint(core.EntryPoint{
		Name:      name,
		Namespace: namespace,
		Build:     core.SuiteAt(name, core.Caller(0), build),
	})
}

// Registers a suite that is reported as skipped without being built.
func (r *Runner) SkipSuite(namespace string, name string, reason string) {
	r.AddEntryPoint(core.EntryPoint{
		Name:       name,
		Namespace:  namespace,
		SkipReason: reason,
	})
}

// Returns the name of the runner
func (r *Runner) Name() string {
	return r.name
}

// Returns a list of all entry points
func (r *Runner) EntryPoints() []core.EntryPoint {
	return slices.Clone(r.entryPoints)
}

// Returns an entry point by name, will exit with an error if it is not found.
func (r *Runner) EntryPoint(name string) core.EntryPoint {
	for _, entryPoint := range r.entryPoints {
		if entryPoint.Name == name {
			return entryPoint
		}
	}

	r.Log.Fatalf("Suite '%s' not found", name)
	return core.EntryPoint{}
}

func (r *Runner) AzureDevops() bool {
	return r.settings.AzureDevops
}

func (r *Runner) Logger() *logrus.Logger {
	return r.Log
}

func (r *Runner) String() string {
	return fmt.Sprintf("%s (%d suites)", r.name, len(r.entryPoints))
}
