// Package config loads application configuration from environment variables,
// 12-factor style. A .env file in the working directory is applied first when
// present, which keeps local development to a single checked-out file.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
// Every field is populated from an environment variable; defaults match the
// values the service has always run with (port 4000, SQLite file store).
type Config struct {
	// HTTP listen port.
	Port int `env:"PORT" envDefault:"4000"`

	// Path to the SQLite database file.
	DBPath string `env:"DB_PATH" envDefault:"data/taskmanager.db"`

	// Logging: debug, info, warn, or error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Server timeouts.
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Comma-separated list of allowed CORS origins. Empty means every
	// origin is allowed — this API has no credentialed endpoints.
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:""`
}

// Load reads a .env file (if one exists) and then parses the environment
// into a Config. A missing .env is not an error — production sets real
// environment variables instead.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parsing environment: %w", err)
	}

	return cfg, nil
}

// AllowedOrigins splits CORSAllowedOrigins into a list, dropping blanks.
func (c *Config) AllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// SlogLevel maps the LogLevel string to a slog.Level. Unknown values fall
// back to info rather than failing startup.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
