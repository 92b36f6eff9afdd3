// Package config loads the .raccoon.yml file carrying CLI preferences for
// the raccoon binary: whether to colorize diagnostic output, how long to
// debounce filesystem events in watch mode, and the tab width used when
// rendering a caret under a diagnostic (the lexer itself always counts
// raw characters, never tab-expanded columns).
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Filename is the configuration file raccoon looks for in the current
// working directory.
const Filename = ".raccoon.yml"

// Config holds CLI preferences read from Filename.
type Config struct {
	Color         bool          `yaml:"color"`
	WatchDebounce time.Duration `yaml:"watchDebounce"`
	TabWidth      int           `yaml:"tabWidth"`
}

// Default returns the configuration raccoon uses when Filename is absent.
func Default() *Config {
	return &Config{
		Color:         true,
		WatchDebounce: 200 * time.Millisecond,
		TabWidth:      8,
	}
}

// Load reads Filename from the current directory. A missing file is not an
// error: Default() is returned instead.
func Load() (*Config, error) {
	data, err := os.ReadFile(Filename)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", Filename, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", Filename, err)
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 8
	}
	if cfg.WatchDebounce <= 0 {
		cfg.WatchDebounce = 200 * time.Millisecond
	}
	return cfg, nil
}

// Save writes cfg to Filename, creating or truncating it.
func Save(cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", Filename, err)
	}
	if err := os.WriteFile(Filename, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", Filename, err)
	}
	return nil
}
