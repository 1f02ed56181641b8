package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/orbitforge/regolith/pkg/noise"
)

// Load loads configuration with priority: defaults < file < flags, then
// validates it. Model names are rejected here, at the boundary, not inside
// the numeric core.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that must fail at setup time.
func (c *Config) Validate() error {
	if c.Surface.Width < 2 || c.Surface.Height < 2 {
		return fmt.Errorf("surface grid must be at least 2x2, got %dx%d", c.Surface.Width, c.Surface.Height)
	}
	if c.Surface.Radius <= 0 {
		return fmt.Errorf("surface radius must be positive, got %g", c.Surface.Radius)
	}
	for i, l := range c.Layers {
		if _, err := noise.ParseModel(l.Model); err != nil {
			return fmt.Errorf("layer %d: %w", i, err)
		}
		if l.Octaves < 0 {
			return fmt.Errorf("layer %d: octaves must not be negative, got %d", i, l.Octaves)
		}
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./regolith.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Regolith")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Regolith")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "regolith")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "regolith")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
