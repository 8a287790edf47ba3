// Package config loads server configuration from environment variables,
// with a .env file picked up when present.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/lexitrain/backend/pkg/validator"
)

type Config struct {
	Env      string         `mapstructure:"env" validate:"oneof=development production staging"`
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	DB       DBConfig       `mapstructure:"db" validate:"required"`
	Practice PracticeConfig `mapstructure:"practice" validate:"required"`
}

type ServerConfig struct {
	Address         string        `mapstructure:"address" validate:"required"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"min=1s"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"min=1s"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"min=1s"`
}

type DBConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=sqlite3 postgres"`
	DSN    string `mapstructure:"dsn" validate:"required"`
}

type PracticeConfig struct {
	SessionTTL      time.Duration `mapstructure:"session_ttl" validate:"min=1m"`
	JanitorInterval time.Duration `mapstructure:"janitor_interval" validate:"min=1m"`
	PersistWorkers  int           `mapstructure:"persist_workers" validate:"min=1,max=64"`
}

// Load reads configuration from the environment. Every setting has a
// usable default, so an empty environment yields a development setup
// backed by a local sqlite file.
func Load() (*Config, error) {
	// Missing .env is fine, real deployments set the environment directly.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("env", "development")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("db.driver", "sqlite3")
	v.SetDefault("db.dsn", "lexitrain.db")
	v.SetDefault("practice.session_ttl", 30*time.Minute)
	v.SetDefault("practice.janitor_interval", 5*time.Minute)
	v.SetDefault("practice.persist_workers", 2)

	bindings := map[string]string{
		"env":                       "APP_ENV",
		"server.address":            "SERVER_ADDRESS",
		"server.read_timeout":       "SERVER_READ_TIMEOUT",
		"server.write_timeout":      "SERVER_WRITE_TIMEOUT",
		"server.shutdown_timeout":   "SERVER_SHUTDOWN_TIMEOUT",
		"db.driver":                 "DB_DRIVER",
		"db.dsn":                    "DB_DSN",
		"practice.session_ttl":      "SESSION_TTL",
		"practice.janitor_interval": "JANITOR_INTERVAL",
		"practice.persist_workers":  "PERSIST_WORKERS",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
