package list

import (
	"encoding/json"
	"fmt"
	"io"

	"arbor/pkg/arbor/core"
	"arbor/pkg/arbor/utils"
)

type ListNamespacesCmd struct {
	Json   bool     `short:"j" long:"json" help:"Output in JSON format"`
	Filter []string `short:"f" long:"filter" help:"Filter namespaces by a common root"`
}

func (cmd *ListNamespacesCmd) Run(suite core.SuiteContext) error {
	return cmd.run(suite, nil)
}

func (cmd *ListNamespacesCmd) run(suite core.SuiteContext, w io.Writer) error {
	log := suite.Logger()
	log.Info("Listing namespaces")

	pathFilter, err := utils.NewPathFilterFromSlice(cmd.Filter, true)
	if err != nil {
		return err
	}

	tree := utils.NewPathTree()
	for _, entryPoint := range suite.EntryPoints() {
		if entryPoint.Namespace != "" && pathFilter.Match(entryPoint.Namespace) {
			tree.Add(entryPoint.Namespace)
		}
	}

	out := writerOrStdout(w)
	if cmd.Json {
		data, err := json.MarshalIndent(tree, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal namespaces to JSON: %w", err)
		}

		fmt.Fprintln(out, string(data))
		return nil
	}

	for _, namespace := range tree.Paths() {
		fmt.Fprintln(out, namespace)
	}

	return nil
}
