// Package config loads meter configuration for host-side tools
package config

import (
	"encoding/json"
	"fmt"

	"capmeter/core"
)

// LoadConfig parses a JSON configuration and returns a validated core.Config.
// Missing fields take the reference values.
func LoadConfig(jsonData []byte) (*core.Config, error) {
	cfg, err := DecodeConfig(jsonData)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// DecodeConfig parses and defaults a JSON configuration without validating
// it, for callers that layer further overrides on top.
func DecodeConfig(jsonData []byte) (*core.Config, error) {
	var cfg core.Config

	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// applyDefaults fills in zero values from core.DefaultConfig
func applyDefaults(cfg *core.Config) {
	def := core.DefaultConfig()

	if cfg.ClockHz == 0 {
		cfg.ClockHz = def.ClockHz
	}
	if cfg.R1 == 0 {
		cfg.R1 = def.R1
	}
	if cfg.R2 == 0 {
		cfg.R2 = def.R2
	}
	if cfg.WindowMS == 0 {
		cfg.WindowMS = def.WindowMS
	}
}
