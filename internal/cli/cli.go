package cli

import (
	"os"

	"arbor/internal/cli/list"
	"arbor/internal/cli/run"
	"arbor/internal/config"

	"github.com/alecthomas/kong"
)

type GlobalOpts struct {
	Verbosity   string `short:"v" help:"Set log level, overrides the configuration file"`
	AzureDevops bool   `short:"a" help:"Enable Azure DevOps integration" env:"TF_BUILD"`
	Config      string `short:"c" help:"Path to a YAML configuration file" type:"path" env:"ARBOR_CONFIG"`
}

// Settings loads the configuration file and environment, then applies the
// global flags on top.
func (g GlobalOpts) Settings() (config.Settings, error) {
	settings, err := config.Load(g.Config)
	if err != nil {
		return config.Settings{}, err
	}

	if g.Verbosity != "" {
		settings.Verbosity = g.Verbosity
		if _, err := settings.LogLevel(); err != nil {
			return config.Settings{}, err
		}
	}

	settings.AzureDevops = settings.AzureDevops || g.AzureDevops
	return settings, nil
}

type cli struct {
	Global GlobalOpts   `embed:""`
	List   list.ListCmd `cmd:"" help:"List suites and their tests"`
	Run    run.RunCmd   `cmd:"" help:"Run suites"`
}

func newParser(name string, c *cli) (*kong.Kong, error) {
	return kong.New(c,
		kong.Name(name),
		kong.Description("Runs test trees built at runtime by the registered suites."),
		kong.UsageOnError(),
	)
}

func ParseCommandLine(name string) (*kong.Context, GlobalOpts) {
	// Force display help if no arguments are provided
	if len(os.Args) < 2 {
		os.Args = append(os.Args, "--help")
	}

	c := cli{}
	parser, err := newParser(name, &c)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	return ctx, c.Global
}
