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

func Test_parseJson(t *testing.T) {
	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"endpoint_addr_grpc":   "www.example:9000",
		"database_dsn":         "postgres://db",
		"secret_key":           "my_secret_key",
		"password_hash_cost":   12,
		"log_level":            "debug",
		"db_max_open_conns":    5,
		"db_max_idle_conns":    2,
		"db_conn_max_lifetime": "90s",
	})

	t.Run("loads from json", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, parseJson(cfg, []string{"-config", full}))

		assert.Equal(t, "www.example:9000", cfg.EndpointAddrGRPC)
		assert.Equal(t, "postgres://db", cfg.DatabaseDSN)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, 12, cfg.PasswordHashCost)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 5, cfg.DBMaxOpenConns)
		assert.Equal(t, 2, cfg.DBMaxIdleConns)
		assert.Equal(t, 90*time.Second, cfg.DBConnMaxLifetime)
	})

	t.Run("partial file keeps the rest", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{"secret_key": "k2"})
		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJson(cfg, []string{"-c", partial}))

		assert.Equal(t, "k2", cfg.SecretKey)
		assert.Equal(t, ":50051", cfg.EndpointAddrGRPC)
		assert.Equal(t, 5*time.Minute, cfg.DBConnMaxLifetime)
	})

	t.Run("no flag, no changes", func(t *testing.T) {
		cfg := &Config{EndpointAddrGRPC: "defaults:1234"}
		require.NoError(t, parseJson(cfg, []string{"-a", ":1"}))
		assert.Equal(t, "defaults:1234", cfg.EndpointAddrGRPC)
	})

	t.Run("invalid json", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		assert.Error(t, parseJson(&Config{}, []string{"-config", bad}))
	})
}
