package app

import (
	"errors"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	WorkDir    string // input.txt and output.txt live here unless overridden
	InputPath  string
	OutputPath string
	ConfigPath string // hcl file or directory; replaces the single-maze paths

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath != "" && (cfg.InputPath != "" || cfg.OutputPath != "") {
		return nil, errors.New("a settings file cannot be combined with explicit input or output paths")
	}
	if cfg.WorkDir == "" {
		cfg.WorkDir = "."
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	return &cfg, nil
}
