package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the full droplist configuration
type Config struct {
	Select SelectConfig `json:"select"`
	UI     UIConfig     `json:"ui"`
}

// SelectConfig contains selection and paging settings
type SelectConfig struct {
	ItemsPerPage     int `json:"itemsPerPage"`
	SearchDebounceMs int `json:"searchDebounceMs"`
}

// UIConfig contains rendering settings
type UIConfig struct {
	MaxVisibleRows int `json:"maxVisibleRows"`
	FieldWidth     int `json:"fieldWidth"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Select: SelectConfig{
			ItemsPerPage:     20,
			SearchDebounceMs: 250,
		},
		UI: UIConfig{
			MaxVisibleRows: 8,
			FieldWidth:     40,
		},
	}
}

// LoadConfig loads configuration from dir with priority:
// 1. .droplist.json in dir
// 2. Defaults
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".droplist.json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse .droplist.json: %w", err)
	}
	merged := MergeWithDefaults(&cfg)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// SaveConfig saves configuration to the specified path
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.Select.ItemsPerPage == 0 {
		cfg.Select.ItemsPerPage = defaults.Select.ItemsPerPage
	}
	if cfg.Select.SearchDebounceMs == 0 {
		cfg.Select.SearchDebounceMs = defaults.Select.SearchDebounceMs
	}

	if cfg.UI.MaxVisibleRows == 0 {
		cfg.UI.MaxVisibleRows = defaults.UI.MaxVisibleRows
	}
	if cfg.UI.FieldWidth == 0 {
		cfg.UI.FieldWidth = defaults.UI.FieldWidth
	}

	return cfg
}

// Validate rejects values the widget cannot work with
func (c *Config) Validate() error {
	if c.Select.ItemsPerPage < 1 {
		return fmt.Errorf("select.itemsPerPage must be at least 1, got %d", c.Select.ItemsPerPage)
	}
	if c.Select.SearchDebounceMs < 0 {
		return fmt.Errorf("select.searchDebounceMs must not be negative, got %d", c.Select.SearchDebounceMs)
	}
	if c.UI.MaxVisibleRows < 1 {
		return fmt.Errorf("ui.maxVisibleRows must be at least 1, got %d", c.UI.MaxVisibleRows)
	}
	if c.UI.FieldWidth < 10 {
		return fmt.Errorf("ui.fieldWidth must be at least 10, got %d", c.UI.FieldWidth)
	}
	return nil
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}
