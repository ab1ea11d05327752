package run

import (
	"fmt"
	"io"
	"os"

	"arbor/internal/collector"
	"arbor/internal/devops"
	"arbor/internal/metrics"
	"arbor/internal/reporter"
	"arbor/internal/runner"
	"arbor/internal/testmgr"
	"arbor/pkg/arbor/core"
)

type executeOpts struct {
	reportPath  string
	metricsPath string

	// Destination of the console report and pipeline commands, stdout when
	// nil.
	out io.Writer
}

func execute(suite core.SuiteContext, entryPoints []core.EntryPoint, opts executeOpts) error {
	log := suite.Logger()
	out := opts.out
	if out == nil {
		out = os.Stdout
	}

	tm := testmgr.NewManager(log)
	listeners := core.Listeners{tm}

	if suite.AzureDevops() {
		listeners = append(listeners, devops.NewListener(devops.NewPrinter(out)))
	}

	var ml *metrics.Listener
	if opts.metricsPath != "" {
		ml = metrics.NewListener()
		listeners = append(listeners, ml)
	}

	root := collector.Discover(suite.Name(), entryPoints, log)
	restore := tm.CaptureStandardLogger()
	runner.New(listeners, log).Run(root)
	restore()

	if closed := tm.Close(); closed > 0 {
		log.Warnf("%d nodes did not finish", closed)
	}

	rep := reporter.NewReporter(tm)
	rep.SetOutput(out)
	if err := rep.PrintReport(); err != nil {
		return fmt.Errorf("failed to print report: %w", err)
	}

	if opts.reportPath != "" {
		if err := rep.WriteFile(opts.reportPath); err != nil {
			return err
		}
		log.Infof("Report written to '%s'", opts.reportPath)
	}

	if ml != nil {
		if err := ml.WriteTextfile(opts.metricsPath); err != nil {
			return err
		}
		log.Infof("Metrics written to '%s'", opts.metricsPath)
	}

	return rep.ExitError()
}
