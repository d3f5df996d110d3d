// Package config loads launcher settings with viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds launcher settings. The drawing widget itself reads nothing
// from here beyond the window it is given.
type Config struct {
	Window WindowConfig
	Debug  bool
}

// WindowConfig sets up the host window.
type WindowConfig struct {
	Title  string
	Width  float32
	Height float32
}

// Load reads configuration from file and env. Env var overrides use prefix SKETCHPAD_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("window.title", "SketchPad")
	v.SetDefault("window.width", 1024)
	v.SetDefault("window.height", 768)
	v.SetDefault("debug", false)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SKETCHPAD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir = filepath.Join(os.Getenv("HOME"), ".config")
		}
		v.AddConfigPath(filepath.Join(dir, "sketchpad"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SKETCHPAD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return Config{}, fmt.Errorf("window size %gx%g must be positive", c.Window.Width, c.Window.Height)
	}
	return c, nil
}
