// Package config loads the ambient configuration from environment variables.
// Game inputs themselves are argv-only; the environment controls logging.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the logging settings.
type Config struct {
	LogLevel  string `env:"TASK3_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"TASK3_LOG_FORMAT" envDefault:"console"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
