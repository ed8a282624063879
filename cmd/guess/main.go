package main

import (
	"github.com/alecthomas/kong"

	"github.com/lox/guess/internal/config"
)

// CLI is the command line interface
type CLI struct {
	Version   kong.VersionFlag `short:"v" help:"Show version"`
	Config    string           `short:"c" default:"${config_path}" help:"Path to HCL configuration file"`
	Max       int              `short:"m" help:"Upper bound of the secret (overrides config)"`
	Seed      int64            `help:"Random seed, 0 seeds from the clock (overrides config)"`
	LogLevel  string           `short:"l" help:"Log level (overrides config)"`
	LogFile   string           `help:"Log file path (overrides config)"`
	NoColor   bool             `help:"Disable colors"`
	HideTimer bool             `help:"Hide the elapsed game timer"`
}

// version is set by ldflags during build
var version = "dev"

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("guess"),
		kong.Description("Guess the secret number in your terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_path": config.DefaultPath,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
