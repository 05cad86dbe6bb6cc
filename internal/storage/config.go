package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nikbrunner/techbook/internal/model"
)

// Storage backend names accepted in Config.Storage.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds application configuration.
type Config struct {
	Storage         string `json:"storage"`
	DefaultCategory string `json:"defaultCategory"`
	DefaultIcon     string `json:"defaultIcon"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Storage:         BackendJSON,
		DefaultCategory: model.DefaultCategory,
		DefaultIcon:     model.DefaultIcon,
	}
}

// LoadConfig reads config from the JSON file.
// Creates the file with defaults if it doesn't exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := DefaultConfig()
			// Non-fatal: return defaults even if save fails
			_ = SaveConfig(path, &config)
			return &config, nil
		}
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Apply defaults for missing fields
	defaults := DefaultConfig()
	if config.Storage == "" {
		config.Storage = defaults.Storage
	}
	if config.DefaultCategory == "" {
		config.DefaultCategory = defaults.DefaultCategory
	}
	if config.DefaultIcon == "" {
		config.DefaultIcon = defaults.DefaultIcon
	}
	if err := model.ValidateIcon(config.DefaultIcon); err != nil {
		return nil, fmt.Errorf("defaultIcon in %s: %w", path, err)
	}

	return &config, nil
}

// SaveConfig writes config to the JSON file.
// Creates the directory if it doesn't exist.
func SaveConfig(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfigDir returns the application directory: ~/.config/techbook
func DefaultConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "techbook"), nil
}

// DefaultConfigFilePath returns the default config path: ~/.config/techbook/config.json
func DefaultConfigFilePath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// DefaultJSONPath returns the default bookmark file: ~/.config/techbook/bookmarks.json
func DefaultJSONPath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "bookmarks.json"), nil
}

// DefaultLogPath returns the log file path: ~/.config/techbook/techbook.log
func DefaultLogPath() (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "techbook.log"), nil
}
