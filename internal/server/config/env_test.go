package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
		want    Config
		wantErr bool
	}{
		{
			name:    "empty environment keeps values",
			environ: map[string]string{},
			want:    Config{EndpointAddrGRPC: ":50051", SecretKey: "preset-secret-key", PasswordHashCost: 10},
		},
		{
			name: "all variables",
			environ: map[string]string{
				"SHELF_GRPC_ADDR":    ":6000",
				"SHELF_DATABASE_DSN": "postgres://env",
				"SHELF_SECRET_KEY":   "env-secret",
				"SHELF_HASH_COST":    "12",
				"SHELF_LOG_LEVEL":    "warn",
			},
			want: Config{
				EndpointAddrGRPC: ":6000",
				DatabaseDSN:      "postgres://env",
				SecretKey:        "env-secret",
				PasswordHashCost: 12,
				LogLevel:         "warn",
			},
		},
		{
			name:    "empty value does not override",
			environ: map[string]string{"SHELF_SECRET_KEY": ""},
			want:    Config{EndpointAddrGRPC: ":50051", SecretKey: "preset-secret-key", PasswordHashCost: 10},
		},
		{
			name:    "bad integer",
			environ: map[string]string{"SHELF_HASH_COST": "lots"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{EndpointAddrGRPC: ":50051", SecretKey: "preset-secret-key", PasswordHashCost: 10}
			err := parseEnv(&cfg, tt.environ)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}
