package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 3, cfg.Retries)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
host = "ghe.example.com"
retries = 5
timeout = "15s"
theme = "light"
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ghe.example.com", cfg.Host)
	assert.Equal(t, 5, cfg.Retries)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.Equal(t, ThemeLight, cfg.Theme)
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr, "unset keys keep defaults")
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Retries, cfg.Retries)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("GH_FORKS_RETRIES", "1")
	t.Setenv("GH_FORKS_THEME", "dark")
	t.Setenv("GH_FORKS_TIMEOUT", "2s")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Retries)
	assert.Equal(t, ThemeDark, cfg.Theme)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
}

func TestLoadBadEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("GH_FORKS_RETRIES", "many")
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadIgnoresPageSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("per_page = 10\nretries = 1\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Retries)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative retries", func(c *Config) { c.Retries = -1 }},
		{"bad theme", func(c *Config) { c.Theme = "neon" }},
		{"no host", func(c *Config) { c.Host = "" }},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
