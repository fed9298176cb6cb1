package config

import (
	"flag"
	"io"
	"os"

	"github.com/dmitrijs2005/fundraise/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// os.Args is filtered down to the flags handled here, so -c/-config and
// anything unknown does not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-u", "-p", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Storage, "s", cfg.Storage, "storage backend (file or sqlite)")
	fs.StringVar(&cfg.UsersFile, "u", cfg.UsersFile, "users file")
	fs.StringVar(&cfg.ProjectsFile, "p", cfg.ProjectsFile, "projects file")
	fs.StringVar(&cfg.DatabaseFile, "d", cfg.DatabaseFile, "sqlite database file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
