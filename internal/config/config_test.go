package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0:8008", cfg.Addr())
	require.Equal(t, DriverMemory, cfg.Storage.Driver)
	require.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	require.Equal(t, 5*time.Second, cfg.Dashboard.StatsTTL)
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("STORAGE_DSN", "override.db")

	cfg, err := NewConfig()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, DriverSQLite, cfg.Storage.Driver)
	require.Equal(t, "override.db", cfg.Storage.DSN)
}

func TestNewConfig_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")

	_, err := NewConfig()
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown storage driver")
}

func TestValidate(t *testing.T) {
	var cfg Config
	cfg.Storage.Driver = DriverSQLite
	cfg.Auth.Secret = "s"
	require.Error(t, cfg.Validate())

	cfg.Storage.DSN = "file.db"
	require.NoError(t, cfg.Validate())

	cfg.Auth.Secret = ""
	require.Error(t, cfg.Validate())
}
