package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/display-labs/displayctl/internal/sunset"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "hyprctl", cfg.Tools.Hyprctl)
	assert.Equal(t, "brightnessctl", cfg.Tools.Brightnessctl)
	assert.Equal(t, "hyprsunset", cfg.Tools.Hyprsunset)
	assert.Equal(t, sunset.MinTemp, cfg.NightLight.MinTemp)
	assert.Equal(t, sunset.MaxTemp, cfg.NightLight.MaxTemp)
	assert.Equal(t, sunset.DefaultFadeSeconds, cfg.NightLight.FadeSeconds)
	assert.Equal(t, "auto", cfg.TUI.Theme)
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[tools]
hyprctl = "/usr/local/bin/hyprctl"

[night_light]
min_temp = 3000
fade_seconds = 1.5

[tui]
theme = "default"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/usr/local/bin/hyprctl", cfg.Tools.Hyprctl)
	assert.Equal(t, "brightnessctl", cfg.Tools.Brightnessctl, "unset keys keep defaults")
	assert.Equal(t, 3000, cfg.NightLight.MinTemp)
	assert.Equal(t, sunset.MaxTemp, cfg.NightLight.MaxTemp)
	assert.Equal(t, 1.5, cfg.NightLight.FadeSeconds)
	assert.Equal(t, "default", cfg.TUI.Theme)
}

func TestLoadFromConfigDir(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	dir := filepath.Join(base, AppDirName)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"),
		[]byte("[tui]\ntheme = \"default\"\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.TUI.Theme)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("this is { not toml"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadInvalidTemperatureRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[night_light]
min_temp = 7000
max_temp = 3000
`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_temp")
}
