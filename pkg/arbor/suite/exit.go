package suite

import (
	"os"

	"arbor/internal/devops"
)

// Exit the program and report the exit status
func (r *Runner) reportExitStatus(err error) {
	if err == nil {
		r.Log.Infof("Runner '%s' completed", r.name)
		os.Exit(0)
	}

	if r.AzureDevops() {
		devops.NewPrinter(os.Stdout).LogError("Runner '%s' failed: %s", r.name, err)
	}

	r.Log.WithError(err).Fatalf("Runner '%s' failed", r.name)
}
