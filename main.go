package main

import (
	"github.com/alecthomas/kong"

	"github.com/AkatukiSora/poker-hand-stats/internal/application"
	"github.com/AkatukiSora/poker-hand-stats/internal/applog"
	"github.com/AkatukiSora/poker-hand-stats/internal/ui"
)

var (
	version   = "dev"
	commit    = "local"
	buildDate = "unknown"
)

var cli struct {
	Dir     string           `short:"d" default:"." help:"Directory containing hand history exports."`
	Debug   bool             `help:"Enable debug logging."`
	Version kong.VersionFlag `help:"Print version and exit."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("poker-hand-stats"),
		kong.Description("Hand history statistics for GG-style exports."),
		kong.Vars{"version": version + " (" + commit + ", " + buildDate + ")"},
	)

	applog.Init(cli.Debug)

	service := application.NewService(application.DirectoryLocator(cli.Dir))
	ui.Run(service, cli.Dir)
}
