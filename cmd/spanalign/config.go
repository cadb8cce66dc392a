package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dacharyc/overlap"
)

// Config holds the settings spanalign reads from its YAML file.
type Config struct {
	// Presets maps a preset name to its minimum match length.
	Presets map[string]int `yaml:"presets"`
	// DefaultPreset is used when neither --preset nor --min-len is given.
	DefaultPreset string `yaml:"default_preset"`

	MaxCells         int `yaml:"max_cells"`
	MaxRectangles    int `yaml:"max_rectangles"`
	HighlightCeiling int `yaml:"highlight_ceiling"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Presets: map[string]int{
			"sentence": overlap.SentenceMinLen,
			"document": overlap.DocumentMinLen,
		},
		DefaultPreset:    "sentence",
		MaxCells:         overlap.DefaultMaxCells,
		MaxRectangles:    0,
		HighlightCeiling: overlap.DefaultHighlightCeiling,
	}
}

// LoadConfig reads a YAML config from path on top of the defaults.
// An empty path or a missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	for name, n := range c.Presets {
		if n < 1 {
			return fmt.Errorf("preset %q: minimum length %d is less than 1", name, n)
		}
	}
	if _, ok := c.Presets[c.DefaultPreset]; !ok {
		return fmt.Errorf("default preset %q is not defined", c.DefaultPreset)
	}
	if c.MaxCells < 0 || c.MaxRectangles < 0 {
		return errors.New("budgets must not be negative")
	}
	return nil
}

// MinLen resolves a preset name to its minimum match length.
func (c *Config) MinLen(preset string) (int, error) {
	if preset == "" {
		preset = c.DefaultPreset
	}
	n, ok := c.Presets[preset]
	if !ok {
		return 0, fmt.Errorf("unknown preset %q", preset)
	}
	return n, nil
}
