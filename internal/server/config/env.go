package config

import (
	"github.com/caarlos0/env/v11"
)

// EnvConfig lists the environment variables the server reads.
type EnvConfig struct {
	EndpointAddrGRPC string `env:"SHELF_GRPC_ADDR"`
	DatabaseDSN      string `env:"SHELF_DATABASE_DSN"`
	SecretKey        string `env:"SHELF_SECRET_KEY"`
	PasswordHashCost int    `env:"SHELF_HASH_COST"`
	LogLevel         string `env:"SHELF_LOG_LEVEL"`
}

// parseEnv overlays non-empty SHELF_* variables. A nil environ reads the
// process environment.
func parseEnv(config *Config, environ map[string]string) error {
	var e EnvConfig
	if err := env.ParseWithOptions(&e, env.Options{Environment: environ}); err != nil {
		return err
	}

	setString(&config.EndpointAddrGRPC, e.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, e.DatabaseDSN)
	setString(&config.SecretKey, e.SecretKey)
	setInt(&config.PasswordHashCost, e.PasswordHashCost)
	setString(&config.LogLevel, e.LogLevel)
	return nil
}
