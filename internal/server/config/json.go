package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/shelfkeeper/internal/flagx"
	"github.com/dmitrijs2005/shelfkeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the server config file. Durations go
// through timex.Duration so both "5m" and integer nanoseconds are accepted.
// Fields missing from the file leave the current value untouched.
type JsonConfig struct {
	EndpointAddrGRPC  string          `json:"endpoint_addr_grpc"`
	DatabaseDSN       string          `json:"database_dsn"`
	SecretKey         string          `json:"secret_key"`
	PasswordHashCost  int             `json:"password_hash_cost"`
	LogLevel          string          `json:"log_level"`
	DBMaxOpenConns    int             `json:"db_max_open_conns"`
	DBMaxIdleConns    int             `json:"db_max_idle_conns"`
	DBConnMaxLifetime *timex.Duration `json:"db_conn_max_lifetime"`
}

// parseJson overlays values from the file given with -c or -config.
// Without the flag nothing is loaded.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return err
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setInt(&config.PasswordHashCost, c.PasswordHashCost)
	setString(&config.LogLevel, c.LogLevel)
	setInt(&config.DBMaxOpenConns, c.DBMaxOpenConns)
	setInt(&config.DBMaxIdleConns, c.DBMaxIdleConns)
	if c.DBConnMaxLifetime != nil {
		config.DBConnMaxLifetime = c.DBConnMaxLifetime.Duration
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}
