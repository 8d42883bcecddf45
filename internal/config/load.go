package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		DefaultPath(),
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
		return filepath.Join(home, "Library", "Application Support", "NurbsView")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "NurbsView")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "nurbsview")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "nurbsview")
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

// Validate checks values that would make picking or meshing meaningless.
func (c *Config) Validate() error {
	if !(c.Picking.Threshold > 0) {
		return fmt.Errorf("picking.threshold must be positive, got %v", c.Picking.Threshold)
	}
	if !(c.Picking.CurveTolerance > 0) {
		return fmt.Errorf("picking.curve_tolerance must be positive, got %v", c.Picking.CurveTolerance)
	}
	if c.Mesh.NormalLength != nil && *c.Mesh.NormalLength < 0 {
		return fmt.Errorf("mesh.normal_length must not be negative, got %v", *c.Mesh.NormalLength)
	}
	return nil
}
