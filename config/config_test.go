package config

import (
	"os"
	"path/filepath"
	"testing"

	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("generation defaults", func(t *testing.T) {
		assert.Equal(t, BackendGemini, cfg.Generation.Backend)
		assert.Equal(t, "gemini-2.5-flash", cfg.Generation.Model)
		assert.Empty(t, cfg.Generation.APIKey)
	})
	t.Run("files defaults", func(t *testing.T) {
		assert.Equal(t, int64(20*1024*1024), cfg.Files.MaxSize)
	})
	t.Run("logging defaults", func(t *testing.T) {
		assert.False(t, cfg.Logging.Debug)
		assert.Equal(t, filepath.Join(".osint", "logs"), cfg.Logging.Dir)
	})
	t.Run("defaults validate", func(t *testing.T) {
		assert.NoError(t, cfg.Validate())
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "unknown backend", mutate: func(c *Config) { c.Generation.Backend = "openai" }},
		{name: "empty model", mutate: func(c *Config) { c.Generation.Model = "" }},
		{name: "gateway without url", mutate: func(c *Config) {
			c.Generation.Backend = BackendGateway
			c.Generation.GatewayURL = ""
		}},
		{name: "zero max size", mutate: func(c *Config) { c.Files.MaxSize = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestNewViper_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
generation:
  backend: gateway
  model: google/gemini-2.5-flash
  gateway_url: http://gateway:8080
logging:
  debug: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("OSINT_UI_THEME", "dracula")

	v, err := NewViper(path)
	require.NoError(t, err)

	cfg, err := FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, BackendGateway, cfg.Generation.Backend)
	assert.Equal(t, "google/gemini-2.5-flash", cfg.Generation.Model)
	assert.Equal(t, "http://gateway:8080", cfg.Generation.GatewayURL)
	assert.True(t, cfg.Logging.Debug)
	assert.Equal(t, "dracula", cfg.UI.Theme)
	assert.Equal(t, DefaultConfig().Files.MaxSize, cfg.Files.MaxSize, "unset keys keep defaults")
}

func TestNewViper_MissingExplicitFile(t *testing.T) {
	_, err := NewViper(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFromViper_RejectsInvalid(t *testing.T) {
	t.Setenv("OSINT_GENERATION_BACKEND", "carrier-pigeon")

	v, err := NewViper("")
	require.NoError(t, err)

	_, err = FromViper(v)
	assert.Error(t, err)
}

func TestResolveAPIKey(t *testing.T) {
	t.Setenv("API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	cfg := DefaultConfig()
	assert.Empty(t, cfg.ResolveAPIKey())

	t.Setenv("GEMINI_API_KEY", "gemini-key")
	assert.Equal(t, "gemini-key", cfg.ResolveAPIKey())

	t.Setenv("API_KEY", "env-key")
	assert.Equal(t, "env-key", cfg.ResolveAPIKey())

	cfg.Generation.APIKey = "config-key"
	assert.Equal(t, "config-key", cfg.ResolveAPIKey())
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("OSINT_TEST_DOTENV=from-file\n"), 0644))
	t.Setenv("OSINT_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("OSINT_TEST_DOTENV"))

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), path))
	assert.Equal(t, "from-file", os.Getenv("OSINT_TEST_DOTENV"))
}

func TestSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Generation.Model = "gemini-2.5-pro"
	require.NoError(t, cfg.SaveConfig(path))

	v, err := NewViper(path)
	require.NoError(t, err)
	loaded, err := FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-pro", loaded.Generation.Model)
}
