// Package config loads the hintline configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config controls rendering and truncation.
type Config struct {
	// MaxLength is the visible-character budget applied to each frame.
	// Zero disables truncation entirely.
	MaxLength int `yaml:"max_length"`
	// OverflowStr is appended when a frame is truncated.
	OverflowStr string `yaml:"overflow_str"`
	// Classic switches to the plain (unstyled) rendition.
	Classic bool `yaml:"classic"`
	// Theme selects the palette: "dark", "light", or "auto".
	Theme string `yaml:"theme"`
	// Keymap is the path to the keymap YAML exported by the host.
	// Empty means the built-in defaults.
	Keymap string `yaml:"keymap"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		MaxLength:   0,
		OverflowStr: "...",
		Theme:       "auto",
	}
}

// DefaultPath returns the config file location: $HINTLINE_CONFIG if
// set, otherwise ~/.config/hintline/config.yaml.
func DefaultPath() string {
	if p := os.Getenv("HINTLINE_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "hintline", "config.yaml")
}

// Load reads the config from DefaultPath.
func Load() (*Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom reads the config from the given path.
// If the file does not exist, it returns the defaults with no error.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.MaxLength < 0 {
		return fmt.Errorf("max_length: must be >= 0, got %d", c.MaxLength)
	}
	if strings.ContainsRune(c.OverflowStr, '\x1b') {
		return fmt.Errorf("overflow_str: escape sequences not permitted")
	}
	switch c.Theme {
	case "", "auto", "dark", "light":
	default:
		return fmt.Errorf("theme: must be auto, dark or light, got %q", c.Theme)
	}
	return nil
}
