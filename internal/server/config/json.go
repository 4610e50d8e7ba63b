package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/orderly-app/orderly/internal/flagx"
	"github.com/orderly-app/orderly/internal/timex"
)

// JsonConfig is the DTO for reading a JSON configuration file. It uses
// timex.Duration for interval fields, which parses both string values such
// as "5m" and integer nanoseconds. After unmarshalling, set fields are
// copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr   string         `json:"endpoint_addr"`
	DatabaseDSN    string         `json:"database_dsn"`
	TLSCertFile    string         `json:"tls_cert_file"`
	TLSKeyFile     string         `json:"tls_key_file"`
	ReadTimeout    timex.Duration `json:"read_timeout"`
	MaxConnections int            `json:"max_connections"`
	MaxMessageSize int            `json:"max_message_size"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config. The file path comes from the -c or -config command-line flags;
// without them no file is loaded. Fields absent from the file keep their
// current values. An unreadable or invalid file panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.TLSCertFile != "" {
		config.TLSCertFile = c.TLSCertFile
	}
	if c.TLSKeyFile != "" {
		config.TLSKeyFile = c.TLSKeyFile
	}
	if c.ReadTimeout.Duration != 0 {
		config.ReadTimeout = time.Duration(c.ReadTimeout.Duration)
	}
	if c.MaxConnections != 0 {
		config.MaxConnections = c.MaxConnections
	}
	if c.MaxMessageSize != 0 {
		config.MaxMessageSize = c.MaxMessageSize
	}
}
