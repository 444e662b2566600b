// Package config loads process settings from the environment.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Runtime holds the knobs the driver reads from the environment.
// Simulation parameters themselves are fixed in the driver.
type Runtime struct {
	// Seed fixes the run for reproducible output. Zero draws a fresh seed.
	Seed int64 `env:"DCSIM_SEED" envDefault:"0"`

	// Workers caps concurrent batches. Zero means GOMAXPROCS.
	Workers int `env:"DCSIM_WORKERS" envDefault:"0"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `env:"DCSIM_LOG_LEVEL" envDefault:"info"`

	// Histogram adds a bar to each distribution line
	Histogram bool `env:"DCSIM_HISTOGRAM" envDefault:"false"`

	// Sample prints one broken-down trial before the summary
	Sample bool `env:"DCSIM_SAMPLE" envDefault:"true"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadRuntime parses Runtime from the environment
func LoadRuntime() (*Runtime, error) {
	var cfg Runtime
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("DCSIM_WORKERS must not be negative, got %d", cfg.Workers)
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Level returns the slog level named by LogLevel
func (r *Runtime) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(r.LogLevel)); err != nil {
		return 0, fmt.Errorf("DCSIM_LOG_LEVEL: %w", err)
	}
	return level, nil
}
