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

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults only", func(t *testing.T) {
		cfg, err := LoadConfig(nil)
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:50051", cfg.ServerEndpointAddr)
		assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	})

	t.Run("flags beat json", func(t *testing.T) {
		path := writeTempJSON(t, "", "", map[string]any{
			"server_endpoint_addr": "json:1",
			"request_timeout":      "9s",
		})
		cfg, err := LoadConfig([]string{"-c", path, "-a", "flag:2"})
		require.NoError(t, err)
		assert.Equal(t, "flag:2", cfg.ServerEndpointAddr)
		assert.Equal(t, 9*time.Second, cfg.RequestTimeout)
	})

	t.Run("bad timeout", func(t *testing.T) {
		_, err := LoadConfig([]string{"-t", "abc"})
		assert.ErrorContains(t, err, "flags")
	})
}
