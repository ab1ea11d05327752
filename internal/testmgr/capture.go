package testmgr

import (
	"io"
	"slices"

	"github.com/sirupsen/logrus"
)

// Forwards entries of the standard logger to the record of the innermost
// running node, or to the run logger when nothing is running.
type standardLoggerCapture struct {
	mgr *Manager
}

func (c standardLoggerCapture) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (c standardLoggerCapture) Fire(entry *logrus.Entry) error {
	target := c.mgr.log
	if len(c.mgr.open) > 0 {
		target = c.mgr.open[len(c.mgr.open)-1].log
	}

	newEntry := target.WithFields(entry.Data)
	newEntry.Caller = entry.Caller
	newEntry.Log(entry.Level, entry.Message)
	return nil
}

// CaptureStandardLogger makes test bodies and hooks that log through the
// logrus standard logger write into the record of the node being executed.
// The standard logger stops printing on its own until the returned function
// restores it.
func (m *Manager) CaptureStandardLogger() (restore func()) {
	std := logrus.StandardLogger()
	if std == m.log {
		// Forwarding to the run logger would feed the hook back to itself.
		return func() {}
	}

	out := std.Out
	level := std.GetLevel()
	hooks := make(logrus.LevelHooks, len(std.Hooks))
	for lvl, levelHooks := range std.Hooks {
		hooks[lvl] = slices.Clone(levelHooks)
	}

	std.SetOutput(io.Discard)
	std.SetLevel(logrus.TraceLevel)
	std.AddHook(standardLoggerCapture{mgr: m})

	return func() {
		std.SetOutput(out)
		std.SetLevel(level)
		std.ReplaceHooks(hooks)
	}
}
