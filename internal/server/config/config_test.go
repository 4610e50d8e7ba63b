package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, c.EndpointAddr, ":5000")
	assert.Equal(t, c.DatabaseDSN, "orderly.db")
	assert.Equal(t, c.TLSCertFile, "cert.pem")
	assert.Equal(t, c.TLSKeyFile, "key.pem")
	assert.Equal(t, c.ReadTimeout, 5*time.Minute)
	assert.Equal(t, c.MaxConnections, 100)
	assert.Equal(t, c.MaxMessageSize, 64*1024)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")

	assert.Equal(t, c.EndpointAddr, ":5000")
	assert.Equal(t, c.DatabaseDSN, "orderly.db")
	assert.Equal(t, c.TLSCertFile, "cert.pem")
	assert.Equal(t, c.TLSKeyFile, "key.pem")
	assert.Equal(t, c.ReadTimeout, 5*time.Minute)
	assert.Equal(t, c.MaxConnections, 100)
	assert.Equal(t, c.MaxMessageSize, 64*1024)
}
