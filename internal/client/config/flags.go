package config

import (
	"flag"

	"github.com/dmitrijs2005/blindmatch/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   base URL of the REST API
//	-d string   local database path
//	-p string   push feed URL
//	-l string   log level
//
// Only these flags are parsed (see flagx.FilterArgs); bad values panic.
func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the REST API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database")
	fs.StringVar(&cfg.PushURL, "p", cfg.PushURL, "websocket URL of the push feed")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, []string{"-a", "-d", "-p", "-l"})); err != nil {
		panic(err)
	}
}
