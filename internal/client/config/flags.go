package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gophaccount/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the user service
//	-t int      request timeout in seconds
//	-n int      notification lifetime in milliseconds
//	-l string   log level
//	-dark       dark mode on start
//
// Note: os.Args is filtered with flagx.FilterArgs first, so -c/-env and
// other foreign flags are ignored here.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-n", "-l", "-dark"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIURL, "a", cfg.APIURL, "user service base URL")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	ttl := fs.Int("n", int(cfg.NotificationTTL.Milliseconds()), "notification lifetime (in milliseconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.DarkMode, "dark", cfg.DarkMode, "start in dark mode")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	cfg.NotificationTTL = time.Duration(*ttl) * time.Millisecond
}
