// Package config provides application configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"charter-forecast/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Scenario contains scenario file settings
	Scenario ScenarioConfig `json:"scenario"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json, markdown)
	DefaultFormat string `json:"default_format"`

	// ShowSchoolDetail shows the full per-school table
	ShowSchoolDetail bool `json:"show_school_detail"`

	// SnapshotYear is the default single-year snapshot (0 = full horizon)
	SnapshotYear int `json:"snapshot_year"`

	// NoColor disables ANSI colors in CLI output
	NoColor bool `json:"no_color"`
}

// ScenarioConfig contains scenario file settings
type ScenarioConfig struct {
	// DefaultPath is the scenario file loaded when none is given
	DefaultPath string `json:"default_path"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Output: OutputConfig{
			DefaultFormat:    "cli",
			ShowSchoolDetail: true,
			SnapshotYear:     0,
		},
		Scenario: ScenarioConfig{
			DefaultPath: "scenario.hcl",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
