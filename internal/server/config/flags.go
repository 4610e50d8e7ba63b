package config

import (
	"flag"
	"os"
	"time"

	"github.com/orderly-app/orderly/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   bind address (e.g., ":5000")
//	-d string   database DSN (postgres:// or an SQLite file path)
//	-f string   TLS certificate file (PEM)
//	-k string   TLS key file (PEM)
//	-t int      per-connection read timeout, seconds
//	-m int      max concurrent connections
//	-s int      max request frame size, bytes
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-f", "-k", "-t", "-m", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.TLSCertFile, "f", config.TLSCertFile, "TLS certificate file")
	fs.StringVar(&config.TLSKeyFile, "k", config.TLSKeyFile, "TLS key file")

	readTimeout := fs.Int("t", int(config.ReadTimeout.Seconds()), "read timeout (in seconds)")

	fs.IntVar(&config.MaxConnections, "m", config.MaxConnections, "max concurrent connections")
	fs.IntVar(&config.MaxMessageSize, "s", config.MaxMessageSize, "max message size (in bytes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.ReadTimeout = time.Duration(*readTimeout) * time.Second
}
