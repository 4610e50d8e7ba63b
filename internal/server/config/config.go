// Package config handles configuration for the server component:
// defaults, optional JSON file, environment overlay and command-line flags,
// applied in that order.
package config

import "time"

// Config holds runtime settings for the Orderly server.
//
// Fields:
//   - EndpointAddr: bind address for the TLS listener.
//   - DatabaseDSN: postgres:// DSN (pgx) or an SQLite file path.
//   - TLSCertFile / TLSKeyFile: PEM keypair served to clients.
//   - ReadTimeout: per-connection idle limit; a client that stays silent
//     longer is disconnected.
//   - MaxConnections: cap on concurrently served connections.
//   - MaxMessageSize: largest accepted request frame, in bytes.
type Config struct {
	EndpointAddr   string        `env:"ORDERLY_ADDRESS"`
	DatabaseDSN    string        `env:"ORDERLY_DATABASE_DSN"`
	TLSCertFile    string        `env:"ORDERLY_TLS_CERT"`
	TLSKeyFile     string        `env:"ORDERLY_TLS_KEY"`
	ReadTimeout    time.Duration `env:"ORDERLY_READ_TIMEOUT"`
	MaxConnections int           `env:"ORDERLY_MAX_CONNECTIONS"`
	MaxMessageSize int           `env:"ORDERLY_MAX_MESSAGE_SIZE"`
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":5000"
	c.DatabaseDSN = "orderly.db"
	c.TLSCertFile = "cert.pem"
	c.TLSKeyFile = "key.pem"
	c.ReadTimeout = 5 * time.Minute
	c.MaxConnections = 100
	c.MaxMessageSize = 64 * 1024
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
