package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, home, cfg.HomeDir)
	assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultAPITimeout, cfg.API.Timeout)
	assert.Equal(t, "/run/user/1000/argent-bank", cfg.Storage.SessionDir)
	assert.Equal(t, filepath.Join(home, ".argentbank", "secrets"), cfg.Storage.SecretsDir)
	assert.Equal(t, "argent-bank", cfg.Storage.PassPrefix)
	assert.True(t, cfg.Storage.UsePass)
	assert.Equal(t, filepath.Join(home, ".argentbank", "accounts.toml"), cfg.Accounts.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".argentbank")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[api]
base_url = "https://bank.example.com/api/v1"
timeout = "5s"

[storage]
use_pass = false
`), 0o600))

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "https://bank.example.com/api/v1", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.False(t, cfg.Storage.UsePass)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("AB_API_BASE_URL", "http://127.0.0.1:9999/api/v1")
	t.Setenv("AB_LOG_LEVEL", "debug")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9999/api/v1", cfg.API.BaseURL)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsMalformedConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".argentbank")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[api\nbase_url ="), 0o600))

	_, err := Load(viper.New())
	require.Error(t, err)
	assert.ErrorContains(t, err, "read config file")
}

func TestValidateRejectsEmptyBaseURL(t *testing.T) {
	err := Config{API: API{Timeout: time.Second}, Accounts: Accounts{Path: "x"}}.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "api base url")
}
