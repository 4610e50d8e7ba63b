package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"endpoint_addr":    "www.example:6000",
		"database_dsn":     "orderly_test.db",
		"tls_cert_file":    "srv.crt",
		"tls_key_file":     "srv.key",
		"read_timeout":     "30s",
		"max_connections":  8,
		"max_message_size": 1024,
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "www.example:6000", cfg.EndpointAddr)
		assert.Equal(t, "orderly_test.db", cfg.DatabaseDSN)
		assert.Equal(t, "srv.crt", cfg.TLSCertFile)
		assert.Equal(t, "srv.key", cfg.TLSKeyFile)
		assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
		assert.Equal(t, 8, cfg.MaxConnections)
		assert.Equal(t, 1024, cfg.MaxMessageSize)
	})

	t.Run("partial json keeps remaining values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{
			"endpoint_addr": "other:7000",
		})
		os.Args = []string{"testbin", "-config", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "other:7000", cfg.EndpointAddr)
		assert.Equal(t, "orderly.db", cfg.DatabaseDSN)
		assert.Equal(t, 5*time.Minute, cfg.ReadTimeout)
	})

	t.Run("no CONFIG and no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			EndpointAddr:   "defaults:1234",
			DatabaseDSN:    "orderly.db",
			TLSCertFile:    "a.crt",
			TLSKeyFile:     "a.key",
			ReadTimeout:    2 * time.Minute,
			MaxConnections: 5,
			MaxMessageSize: 512,
		}
		parseJson(cfg)

		assert.Equal(t, "defaults:1234", cfg.EndpointAddr)
		assert.Equal(t, "orderly.db", cfg.DatabaseDSN)
		assert.Equal(t, "a.crt", cfg.TLSCertFile)
		assert.Equal(t, "a.key", cfg.TLSKeyFile)
		assert.Equal(t, 2*time.Minute, cfg.ReadTimeout)
		assert.Equal(t, 5, cfg.MaxConnections)
		assert.Equal(t, 512, cfg.MaxMessageSize)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
