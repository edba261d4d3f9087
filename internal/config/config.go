// Package config holds the server runtime configuration, loaded from
// SANGO_-prefixed environment variables.
package config

import (
	"fmt"
	"time"

	env "github.com/caarlos0/env/v11"
)

// Config holds the starter application configuration.
type Config struct {
	ServerAddress   string        `env:"SERVER_ADDRESS" envDefault:":8080"`
	DatabaseURL     string        `env:"DATABASE_URL" envDefault:"mongodb://localhost:27017"`
	DatabaseName    string        `env:"DATABASE_NAME" envDefault:"sango"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"text"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// New loads the configuration from the environment.
func New() (*Config, error) {
	var cfg Config
	err := env.ParseWithOptions(&cfg, env.Options{
		Prefix: "SANGO_",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &cfg, nil
}
