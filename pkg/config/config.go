package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user configuration values.
type Config struct {
	LineNumbers bool   `yaml:"line_numbers"`
	Clipboard   bool   `yaml:"clipboard"`
	ScrollOff   int    `yaml:"scroll_off"`
	Log         Log    `yaml:"log"`
	Colors      Colors `yaml:"colors"`
}

// Log configures the event log.
type Log struct {
	Enabled bool   `yaml:"enabled"`
	File    string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{LineNumbers: true}
}

// Load reads configuration from path. A missing file yields the defaults;
// keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.ScrollOff < 0 {
		cfg.ScrollOff = 0
	}
	return cfg, nil
}

// DefaultPath returns ~/.neu/config.yaml, or "" when there is no home
// directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".neu", "config.yaml")
}

// LoadDefault reads the configuration from DefaultPath.
func LoadDefault() (*Config, error) {
	path := DefaultPath()
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
