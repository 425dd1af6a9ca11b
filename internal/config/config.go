package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/arcade/internal/menu"
	"github.com/matheus3301/arcade/internal/tui/keys"
)

// Config represents ~/.arcade/config.toml.
type Config struct {
	AccentColor  string `toml:"accent_color"`
	Navigation   string `toml:"navigation"`
	ActivateKey  string `toml:"activate_key"`
	TickInterval string `toml:"tick_interval"`
	LogLevel     string `toml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		AccentColor:  "lightgreen",
		Navigation:   menu.UpNext.String(),
		TickInterval: "250ms",
		LogLevel:     "info",
	}
}

// Load reads config from the given path. Returns nil and the error if the file is missing.
// Keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default().
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}

// Validate checks every field that is parsed later on.
func (c *Config) Validate() error {
	if _, err := c.Convention(); err != nil {
		return err
	}
	if _, err := c.Tick(); err != nil {
		return err
	}
	if c.AccentColor != "" && tcell.GetColor(c.AccentColor) == tcell.ColorDefault {
		return fmt.Errorf("unknown accent_color %q", c.AccentColor)
	}
	if c.ActivateKey != "" {
		if _, _, err := keys.ParseBindable(c.ActivateKey); err != nil {
			return fmt.Errorf("activate_key: %w", err)
		}
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

// Convention returns the navigation direction mapping.
func (c *Config) Convention() (menu.Convention, error) {
	return menu.ParseConvention(c.Navigation)
}

// Tick returns the host tick period.
func (c *Config) Tick() (time.Duration, error) {
	if c.TickInterval == "" {
		return 250 * time.Millisecond, nil
	}
	d, err := time.ParseDuration(c.TickInterval)
	if err != nil {
		return 0, fmt.Errorf("tick_interval: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("tick_interval must be positive, got %s", d)
	}
	return d, nil
}
