package run

import (
	"arbor/internal/collector"
	"arbor/internal/config"
	"arbor/pkg/arbor/core"
)

type RunCmd struct {
	Suites     []string `arg:"" optional:"" help:"Names of the suites to run, all suites when omitted"`
	Namespaces []string `short:"n" name:"namespace" help:"Run suites whose namespace matches one of these glob patterns"`
	Recursive  bool     `short:"r" help:"Namespace patterns also match every namespace below them"`
	Report     string   `short:"o" help:"Write a YAML report of the run to this file" type:"path"`
	Metrics    string   `short:"m" help:"Write Prometheus metrics of the run to this file" type:"path"`
}

func (cmd *RunCmd) Run(suite core.SuiteContext, settings *config.Settings) error {
	log := suite.Logger()

	selector := collector.Selector{
		Names:      cmd.Suites,
		Namespaces: cmd.Namespaces,
		Recursive:  cmd.Recursive,
	}

	entryPoints, err := selector.Select(suite.EntryPoints())
	if err != nil {
		return err
	}

	log.Infof("Running %d of %d suites", len(entryPoints), len(suite.EntryPoints()))

	opts := executeOpts{
		reportPath:  settings.Report,
		metricsPath: settings.Metrics,
	}
	if cmd.Report != "" {
		opts.reportPath = cmd.Report
	}
	if cmd.Metrics != "" {
		opts.metricsPath = cmd.Metrics
	}

	return execute(suite, entryPoints, opts)
}
