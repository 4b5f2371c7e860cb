// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = ".env"

// Storage driver names.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Config is the typed application configuration.
type Config struct {
	Server struct {
		Host            string        `mapstructure:"host"`
		Port            int           `mapstructure:"port"`
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	} `mapstructure:"server"`

	Storage struct {
		// Driver selects the store implementation once at startup:
		// "memory" (seeded, volatile) or "sqlite".
		Driver string `mapstructure:"driver"`
		DSN    string `mapstructure:"dsn"`
	} `mapstructure:"storage"`

	Auth struct {
		Secret   string        `mapstructure:"secret"`
		Issuer   string        `mapstructure:"issuer"`
		Audience string        `mapstructure:"audience"`
		TokenTTL time.Duration `mapstructure:"token_ttl"`
	} `mapstructure:"auth"`

	Dashboard struct {
		StatsTTL time.Duration `mapstructure:"stats_ttl"`
	} `mapstructure:"dashboard"`
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory, DriverSQLite:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Storage.Driver == DriverSQLite && c.Storage.DSN == "" {
		return fmt.Errorf("storage dsn is required for the sqlite driver")
	}
	if c.Auth.Secret == "" {
		return fmt.Errorf("auth secret must not be empty")
	}
	return nil
}

// NewConfig loads configuration from environment using viper with typed
// defaults and validation. A local .env file fills in unset variables.
func NewConfig() (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(envFile); err == nil {
		for k, val := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, val)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8008)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("storage.driver", DriverMemory)
	v.SetDefault("storage.dsn", "task-tracker.db")

	v.SetDefault("auth.secret", "development-insecure-secret-change-me")
	v.SetDefault("auth.issuer", "task-tracker-api")
	v.SetDefault("auth.audience", "task-tracker-clients")
	v.SetDefault("auth.token_ttl", 24*time.Hour)

	v.SetDefault("dashboard.stats_ttl", 5*time.Second)
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"server.host",
		"server.port",
		"server.shutdown_timeout",
		"storage.driver",
		"storage.dsn",
		"auth.secret",
		"auth.issuer",
		"auth.audience",
		"auth.token_ttl",
		"dashboard.stats_ttl",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}
