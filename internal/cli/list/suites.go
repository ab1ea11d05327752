package list

import (
	"fmt"
	"io"
	"os"

	"arbor/internal/collector"
	"arbor/pkg/arbor/core"
)

type ListSuitesCmd struct {
	SelectionOpts `embed:""`
}

func (cmd *ListSuitesCmd) Run(suite core.SuiteContext) error {
	return cmd.run(suite, nil)
}

func (cmd *ListSuitesCmd) run(suite core.SuiteContext, w io.Writer) error {
	log := suite.Logger()
	log.Info("Listing suites")

	selected, err := selectionFrom(cmd.SelectionOpts).Select(suite.EntryPoints())
	if err != nil {
		return err
	}

	out := writerOrStdout(w)
	for _, entryPoint := range selected {
		if entryPoint.SkipReason != "" {
			fmt.Fprintf(out, "%s (skipped: %s)\n", entryPoint.Path(), entryPoint.SkipReason)
			continue
		}
		fmt.Fprintln(out, entryPoint.Path())
	}

	log.Infof("Selected %d suites", len(selected))
	return nil
}

func selectionFrom(opts SelectionOpts) collector.Selector {
	return collector.Selector{
		Names:      opts.Suites,
		Namespaces: opts.Namespaces,
		Recursive:  opts.Recursive,
	}
}

func writerOrStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}

	return w
}
