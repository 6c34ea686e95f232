// Package config reads the optional logging settings from the environment.
// With nothing set the defaults reproduce a plain console logger at info.
// The variables only affect diagnostics written to stderr; the window, its
// label and the exit code are the same whatever they hold.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

var ErrInvalidLogLevel = errors.New("invalid log level")

type Config struct {
	LogLevel string `env:"HELLO_LOG_LEVEL" envDefault:"info"`
	LogJSON  bool   `env:"HELLO_LOG_JSON" envDefault:"false"`

	// Level is LogLevel parsed by Load.
	Level zerolog.Level
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	cfg.Level = level

	return cfg, nil
}

// parseLevel maps a level name onto zerolog. "warning" is accepted as an alias for warn.
func parseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrInvalidLogLevel, name)
	}
}
