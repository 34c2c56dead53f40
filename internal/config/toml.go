// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	General GeneralConfig `toml:"general"`
	Warmup  WarmupConfig  `toml:"warmup"`
	Log     LogConfig     `toml:"log"`
	Timer   TimerConfig   `toml:"timer"`
}

// GeneralConfig maps unit, logging and storage settings.
type GeneralConfig struct {
	Unit     *string `toml:"unit"`
	LogLevel *string `toml:"log-level"`
	LogFile  *string `toml:"log-file"`
	DB       *string `toml:"db"`
}

// WarmupConfig maps warm-up planner defaults.
type WarmupConfig struct {
	Template *string  `toml:"template"`
	Bar      *float64 `toml:"bar"`
}

// LogConfig maps workout log editor settings.
type LogConfig struct {
	AutosaveMs *int `toml:"autosave-ms"`
}

// TimerConfig maps rest timer settings, in seconds.
type TimerConfig struct {
	RestPresets []int `toml:"rest-presets"`
	RestExtend  *int  `toml:"rest-extend"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
