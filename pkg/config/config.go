// Package config loads the engine's tuning constants from YAML.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Physics tunes the force refiner.
type Physics struct {
	Repulsion   float64 `yaml:"repulsion" validate:"gt=0"`
	Spring      float64 `yaml:"spring" validate:"gt=0"`
	IdealLength float64 `yaml:"ideal_length" validate:"gt=0"`
	Damping     float64 `yaml:"damping" validate:"gt=0,lt=1"`
}

// Layout tunes the hierarchical builder.
type Layout struct {
	NodeSpacing  float64 `yaml:"node_spacing" validate:"gt=0"`
	LayerSpacing float64 `yaml:"layer_spacing" validate:"gt=0"`
	ClusterGap   float64 `yaml:"cluster_gap" validate:"gt=0"`
}

// Render tunes the frame drawing.
type Render struct {
	GridStep   float64 `yaml:"grid_step" validate:"gt=0"`
	NodeRadius float64 `yaml:"node_radius" validate:"gt=0"`
	NameLimit  int     `yaml:"name_limit" validate:"gt=0"`
}

// Config is the full tuning document.
type Config struct {
	TickCap  int     `yaml:"tick_cap" validate:"gt=0"`
	LogLevel string  `yaml:"log_level"`
	Physics  Physics `yaml:"physics"`
	Layout   Layout  `yaml:"layout"`
	Render   Render  `yaml:"render"`
}

// Default returns the tuning used when no file is given.
func Default() *Config {
	return &Config{
		TickCap:  150,
		LogLevel: "info",
		Physics: Physics{
			Repulsion:   6000,
			Spring:      0.02,
			IdealLength: 160,
			Damping:     0.85,
		},
		Layout: Layout{
			NodeSpacing:  140,
			LayerSpacing: 120,
			ClusterGap:   160,
		},
		Render: Render{
			GridStep:   100,
			NodeRadius: 18,
			NameLimit:  22,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the config against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
