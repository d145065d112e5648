// Package config holds user preferences for baserun: where the 1C
// starter executable lives and where launch history is kept.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"baserun/internal/history"
)

// Config holds user preferences.
type Config struct {
	// StarterPath overrides the platform default location of the 1C
	// starter executable. Empty means use the default.
	StarterPath string `json:"starter_path"`
	// HistoryFile is the launch history file, relative to the working
	// directory unless absolute.
	HistoryFile string `json:"history_file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		HistoryFile: history.DefaultFile,
	}
}

// DefaultPath returns the config file location: a project-local
// .baserun directory when one exists, otherwise ~/.baserun.
func DefaultPath() (string, error) {
	if cwd, err := os.Getwd(); err == nil {
		localDir := filepath.Join(cwd, ".baserun")
		if stat, err := os.Stat(localDir); err == nil && stat.IsDir() {
			return filepath.Join(localDir, "config.json"), nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".baserun", "config.json"), nil
}

// Load reads the configuration at path. A missing file yields the
// defaults without error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Save writes the configuration to path, creating the directory if
// needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
