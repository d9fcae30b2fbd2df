package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// config holds the process-level toggles; game parameters are fixed
type config struct {
	Debug  bool   `env:"GRID_SHOOTER_DEBUG"`
	LogDir string `env:"GRID_SHOOTER_LOG_DIR" envDefault:"logs"`
	Mute   bool   `env:"GRID_SHOOTER_MUTE"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
