// Package config loads the application configuration from a TOML file.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the application configuration.
type Config struct {
	// Window configures the game window.
	Window WindowConfig `toml:"window"`

	// Zoom is the initial view zoom percentage.
	Zoom int `toml:"zoom"`

	// Keymap is the path to a TOML keymap overlay. Empty disables the
	// overlay and hot reload.
	Keymap string `toml:"keymap"`

	// Script is the path to a Lua init script. Empty disables scripting.
	Script string `toml:"script"`

	// LogLevel is the minimum log level ("debug", "info", "warn",
	// "error").
	LogLevel string `toml:"log_level"`
}

// WindowConfig configures the game window.
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "driftline",
		},
		Zoom:     100,
		LogLevel: "info",
	}
}

// Load reads configuration from a TOML file, overlaying the defaults.
// A missing file yields the defaults and no error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decoding config %s: %w", path, err)
	}
	return cfg.validate()
}

func (c Config) validate() (Config, error) {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return c, fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Zoom <= 0 {
		c.Zoom = 100
	}
	return c, nil
}
