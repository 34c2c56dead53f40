package config

import (
	"os"
	"path/filepath"
)

const appName = "olympus"

// xdgDir reads an XDG base directory variable. Relative values are invalid
// under the XDG spec and fall back to $HOME joined with fallback.
func xdgDir(env string, fallback ...string) string {
	if v := os.Getenv(env); filepath.IsAbs(v) {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

// ConfigDir holds config.toml.
func ConfigDir() string {
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), appName)
}

// DataDir holds the workout database and the TUI log.
func DataDir() string {
	return filepath.Join(xdgDir("XDG_DATA_HOME", ".local", "share"), appName)
}

// DefaultDBPath is the SQLite file holding day logs and the unit preference.
func DefaultDBPath() string {
	return filepath.Join(DataDir(), appName+".db")
}

// DefaultLogPath is where the log command writes while the alt screen owns
// the terminal; other commands log to stderr.
func DefaultLogPath() string {
	return filepath.Join(DataDir(), appName+".log")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}
