package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config represents the top-level application configuration.
type Config struct {
	Analyze AnalyzeConfig `toml:"analyze"`
	Report  ReportConfig  `toml:"report"`
}

// AnalyzeConfig holds defaults for the analyze command.
type AnalyzeConfig struct {
	Output      string `toml:"output"`
	MappingFile string `toml:"mapping_file"`
}

// ReportConfig holds defaults for the report command.
type ReportConfig struct {
	Analysis  string `toml:"analysis"`
	Output    string `toml:"output"`
	BatchSize int    `toml:"batch_size"`
}

// DefaultConfig returns a Config populated with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Analyze: AnalyzeConfig{
			Output: "codebase-analysis.json",
		},
		Report: ReportConfig{
			Analysis:  "codebase-analysis.json",
			Output:    "migration-plan.md",
			BatchSize: 10,
		},
	}
}

// Load reads a TOML config file. A missing file returns defaults; keys absent
// from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
