package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load builds the effective configuration. Later sources win: defaults,
// then an optional YAML file, then CLI flags. A -config path is used as
// given; otherwise the standard locations are searched and a missing file
// is not an error.
func Load() (*Config, error) {
	cfg := Default()

	path := ConfigPath()
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyFlags(cfg)
	return cfg, nil
}

// findConfigFile returns the first config file that exists: uvee.yaml or
// uvee.yml in the working directory, then config.yaml under ConfigDir.
// Returns "" when none exists.
func findConfigFile() string {
	candidates := []string{
		"uvee.yaml",
		"uvee.yml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the per-user config directory for this tool.
func ConfigDir() string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Uvee")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Uvee")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "uvee")
		}
		return filepath.Join(home, ".config", "uvee")
	}
}

// loadFromFile merges a YAML file into cfg. Keys absent from the file keep
// their current values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
