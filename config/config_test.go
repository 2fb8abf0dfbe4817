package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pexels:\n  api_key: abc123\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "abc123", cfg.Pexels.APIKey)
	assert.Equal(t, 30, cfg.Pexels.Timeout)
	assert.Equal(t, 10, cfg.Pexels.MaxIdleConns)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Color)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PEXELS_API_KEY", "env-key")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.Pexels.APIKey)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `pexels:
  api_key: abc123
  base_url: http://localhost:8080
  timeout: 5
logging:
  level: warn
  format: json
  color: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Pexels.BaseURL)
	assert.Equal(t, 5, cfg.Pexels.Timeout)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.False(t, cfg.Logging.Color)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Pexels: PexelsConfig{APIKey: "abc", Timeout: 30},
			Logging: LoggingConfig{
				Level:  "info",
				Format: "console",
			},
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validate(base()))
	})

	t.Run("missing API key is allowed", func(t *testing.T) {
		cfg := base()
		cfg.Pexels.APIKey = ""
		assert.NoError(t, validate(cfg))
	})

	t.Run("invalid level", func(t *testing.T) {
		cfg := base()
		cfg.Logging.Level = "verbose"
		err := validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid logging level")
	})

	t.Run("invalid format", func(t *testing.T) {
		cfg := base()
		cfg.Logging.Format = "xml"
		err := validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid logging format")
	})

	t.Run("non-positive timeout", func(t *testing.T) {
		cfg := base()
		cfg.Pexels.Timeout = 0
		err := validate(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "timeout must be positive")
	})
}
