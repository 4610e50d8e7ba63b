package config

import (
	"flag"
	"os"
	"time"

	"github.com/orderly-app/orderly/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the backend server (default from Config)
//	-t int      dial timeout in seconds (default from Config)
//	-k          skip server certificate verification
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	dialTimeout := fs.Int("t", int(cfg.DialTimeout.Seconds()), "dial timeout (in seconds)")
	fs.BoolVar(&cfg.InsecureSkipVerify, "k", cfg.InsecureSkipVerify, "skip server certificate verification")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.DialTimeout = time.Duration(*dialTimeout) * time.Second
}
