// Package config loads gh-forks settings. Values are layered: defaults, then
// the TOML config file, then GH_FORKS_* environment variables. Command line
// flags are applied on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

const appName = "gh-forks"

const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

type Config struct {
	Host    string        `toml:"host"`
	Retries int           `toml:"retries"`
	Timeout time.Duration `toml:"-"`
	Theme   string        `toml:"theme"`
	Addr    string        `toml:"addr"`
	LogFile string        `toml:"log_file"`
	Verbose bool          `toml:"verbose"`

	// TimeoutString is the file form of Timeout, e.g. "30s".
	TimeoutString string `toml:"timeout"`
}

func Default() Config {
	return Config{
		Host:    "github.com",
		Retries: 3,
		Theme:   ThemeAuto,
		Addr:    "127.0.0.1:8080",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/gh-forks/config.toml, falling back to
// ~/.config.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads path (DefaultPath when empty) over the defaults and applies
// environment overrides. A missing file is not an error unless path was
// given explicitly.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return cfg, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	if cfg.TimeoutString != "" {
		d, err := time.ParseDuration(cfg.TimeoutString)
		if err != nil {
			return cfg, fmt.Errorf("config timeout %q: %w", cfg.TimeoutString, err)
		}
		cfg.Timeout = d
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("GH_FORKS_HOST"); ok && v != "" {
		c.Host = v
	}
	if v, ok := lookup("GH_FORKS_RETRIES"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("GH_FORKS_RETRIES: %w", err)
		}
		c.Retries = n
	}
	if v, ok := lookup("GH_FORKS_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("GH_FORKS_TIMEOUT: %w", err)
		}
		c.Timeout = d
	}
	if v, ok := lookup("GH_FORKS_THEME"); ok && v != "" {
		c.Theme = v
	}
	if v, ok := lookup("GH_FORKS_ADDR"); ok && v != "" {
		c.Addr = v
	}
	if v, ok := lookup("GH_FORKS_LOG_FILE"); ok && v != "" {
		c.LogFile = v
	}
	return nil
}

func (c Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host is required")
	}
	if c.Retries < 0 {
		return fmt.Errorf("retries must be >= 0, got %d", c.Retries)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	switch c.Theme {
	case ThemeAuto, ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("theme must be one of auto, dark or light, got %q", c.Theme)
	}
	return nil
}
