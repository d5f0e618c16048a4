// Package config loads the optional displayctl configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/display-labs/displayctl/internal/sunset"
)

// AppDirName is the directory under the user config root holding the
// configuration file.
const AppDirName = "displayctl"

// Config captures all tunable settings. Every field has a default; a missing
// configuration file is not an error.
type Config struct {
	Tools      Tools      `mapstructure:"tools"`
	NightLight NightLight `mapstructure:"night_light"`
	TUI        TUI        `mapstructure:"tui"`
}

// Tools holds overrides for the external binaries.
type Tools struct {
	Hyprctl       string `mapstructure:"hyprctl"`
	Brightnessctl string `mapstructure:"brightnessctl"`
	Hyprsunset    string `mapstructure:"hyprsunset"`
}

// NightLight holds color temperature settings.
type NightLight struct {
	MinTemp     int     `mapstructure:"min_temp"`
	MaxTemp     int     `mapstructure:"max_temp"`
	FadeSeconds float64 `mapstructure:"fade_seconds"`
}

// TUI holds terminal UI settings.
type TUI struct {
	Theme string `mapstructure:"theme"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Tools: Tools{
			Hyprctl:       "hyprctl",
			Brightnessctl: "brightnessctl",
			Hyprsunset:    "hyprsunset",
		},
		NightLight: NightLight{
			MinTemp:     sunset.MinTemp,
			MaxTemp:     sunset.MaxTemp,
			FadeSeconds: sunset.DefaultFadeSeconds,
		},
		TUI: TUI{
			Theme: "auto",
		},
	}
}

// Load reads the configuration from path, or from
// $XDG_CONFIG_HOME/displayctl/config.toml when path is empty. A missing file
// yields the defaults; a malformed file is an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	def := Default()
	v.SetDefault("tools.hyprctl", def.Tools.Hyprctl)
	v.SetDefault("tools.brightnessctl", def.Tools.Brightnessctl)
	v.SetDefault("tools.hyprsunset", def.Tools.Hyprsunset)
	v.SetDefault("night_light.min_temp", def.NightLight.MinTemp)
	v.SetDefault("night_light.max_temp", def.NightLight.MaxTemp)
	v.SetDefault("night_light.fade_seconds", def.NightLight.FadeSeconds)
	v.SetDefault("tui.theme", def.TUI.Theme)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(appConfigDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.NightLight.MinTemp <= 0 || c.NightLight.MaxTemp <= 0 {
		return errors.New("night_light temperatures must be positive")
	}
	if c.NightLight.MinTemp >= c.NightLight.MaxTemp {
		return fmt.Errorf("night_light.min_temp %d must be below max_temp %d",
			c.NightLight.MinTemp, c.NightLight.MaxTemp)
	}
	if c.NightLight.FadeSeconds < 0 {
		return errors.New("night_light.fade_seconds must not be negative")
	}
	return nil
}

func appConfigDir() string {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, AppDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", AppDirName)
}
