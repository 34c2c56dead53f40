package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Nil(t, cfg.General.Unit)
	assert.Nil(t, cfg.Warmup.Bar)

	_, err = LoadConfig("")
	require.Error(t, err)
}

func TestLoadConfigParsesSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[general]
unit = "imperial"
log-level = "debug"

[warmup]
template = "soviet"
bar = 35.0

[log]
autosave-ms = 1500

[timer]
rest-presets = [45, 75]
rest-extend = 30
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.General.Unit)
	assert.Equal(t, "imperial", *cfg.General.Unit)
	assert.Equal(t, "debug", *cfg.General.LogLevel)
	assert.Nil(t, cfg.General.DB)
	assert.Equal(t, "soviet", *cfg.Warmup.Template)
	assert.Equal(t, 35.0, *cfg.Warmup.Bar)
	assert.Equal(t, 1500, *cfg.Log.AutosaveMs)
	assert.Equal(t, []int{45, 75}, cfg.Timer.RestPresets)
	assert.Equal(t, 30, *cfg.Timer.RestExtend)
}

func TestLoadConfigRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[general\nunit ="), 0o644))
	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestXDGPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	assert.Equal(t, "/tmp/cfg/olympus/config.toml", DefaultConfigPath())
	assert.Equal(t, "/tmp/data/olympus/olympus.db", DefaultDBPath())
	assert.Equal(t, "/tmp/data/olympus/olympus.log", DefaultLogPath())
	assert.Equal(t, "/tmp/data/olympus", DataDir())
	assert.Equal(t, "/tmp/cfg/olympus", ConfigDir())
}

func TestXDGPathsIgnoreRelativeValues(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "relative/cfg")
	t.Setenv("XDG_DATA_HOME", "")
	assert.Equal(t, filepath.Join(home, ".config", "olympus", "config.toml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join(home, ".local", "share", "olympus", "olympus.db"), DefaultDBPath())
}
