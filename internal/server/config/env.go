package config

import (
	"github.com/caarlos0/env/v10"
)

// parseEnv overlays ORDERLY_* environment variables onto config. Variables
// that are not set leave the corresponding fields untouched, so defaults
// and JSON values survive. Malformed values panic, consistent with the
// other configuration sources.
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
