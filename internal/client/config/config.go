// Package config handles configuration for the Orderly CLI.
package config

import "time"

// Config holds runtime settings for the Orderly CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend TLS endpoint.
//   - DialTimeout: how long to wait for the connection and handshake.
//   - InsecureSkipVerify: accept any server certificate. Meant for
//     self-signed development setups only.
type Config struct {
	ServerEndpointAddr string
	DialTimeout        time.Duration
	InsecureSkipVerify bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:5000"
	c.DialTimeout = 5 * time.Second
	c.InsecureSkipVerify = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
