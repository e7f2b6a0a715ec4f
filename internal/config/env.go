// Package config loads CLI configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// CLI is the configuration of the dataobj command.
type CLI struct {
	LogLevel        string `env:"DATAOBJ_LOG_LEVEL" envDefault:"info"`
	Format          string `env:"DATAOBJ_FORMAT" envDefault:"yaml"`
	EventBuffer     int    `env:"DATAOBJ_EVENT_BUFFER" envDefault:"256"`
	ContinueOnError bool   `env:"DATAOBJ_CONTINUE_ON_ERROR" envDefault:"false"`
}

// LoadCLI parses the CLI configuration and checks its values.
func LoadCLI() (CLI, error) {
	var cfg CLI
	if err := ParseEnv(&cfg); err != nil {
		return CLI{}, err
	}
	if cfg.EventBuffer < 1 {
		return CLI{}, fmt.Errorf("DATAOBJ_EVENT_BUFFER must be positive, got %d", cfg.EventBuffer)
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return CLI{}, err
	}
	return cfg, nil
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", s, err)
	}
	return level, nil
}
