// Package config loads training configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config captures the runtime knobs for a training run.
//
// Values come from DENDRITE_* environment variables; every field has a
// default matching the framework's teaching-scale use.
type Config struct {
	Dataset      string  `env:"DENDRITE_DATASET"    envDefault:"xor"`
	Hidden       []int   `env:"DENDRITE_HIDDEN"     envSeparator:"," envDefault:"8"`
	Iterations   int     `env:"DENDRITE_ITERATIONS" envDefault:"10"`
	LearningRate float64 `env:"DENDRITE_LR"         envDefault:"0.1"`
	Momentum     float64 `env:"DENDRITE_MOMENTUM"   envDefault:"0"`
	Seed         int64   `env:"DENDRITE_SEED"       envDefault:"1"`
	LogEvery     int     `env:"DENDRITE_LOG_EVERY"  envDefault:"50"`
	Checkpoint   string  `env:"DENDRITE_CHECKPOINT"`
}

// Load parses and validates the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c.Dataset == "" {
		return fmt.Errorf("dataset must be set")
	}
	for _, units := range c.Hidden {
		if units <= 0 {
			return fmt.Errorf("hidden layer sizes must be > 0 (got %v)", c.Hidden)
		}
	}
	if c.Iterations <= 0 {
		return fmt.Errorf("iterations must be > 0 (got %d)", c.Iterations)
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("learning rate must be > 0 (got %g)", c.LearningRate)
	}
	if c.Momentum < 0 || c.Momentum >= 1 {
		return fmt.Errorf("momentum must be in [0, 1) (got %g)", c.Momentum)
	}
	if c.LogEvery <= 0 {
		c.LogEvery = 50
	}
	return nil
}
