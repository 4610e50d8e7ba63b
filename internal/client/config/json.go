package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/orderly-app/orderly/internal/flagx"
	"github.com/orderly-app/orderly/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "5s" or as integer nanoseconds. After parsing, set values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	DialTimeout        timex.Duration `json:"dial_timeout"`
	InsecureSkipVerify *bool          `json:"insecure_skip_verify"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Fields absent from the file keep their current values. Panics on read or
// unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	// Resolve file path from flags.
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.DialTimeout.Duration != 0 {
		cfg.DialTimeout = time.Duration(jc.DialTimeout.Duration)
	}
	if jc.InsecureSkipVerify != nil {
		cfg.InsecureSkipVerify = *jc.InsecureSkipVerify
	}
}
