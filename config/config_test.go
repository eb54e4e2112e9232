package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "test-key")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.Generation.APIKey)
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.Generation.BaseURL)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.Generation.Model)
	assert.Equal(t, 1000, cfg.Generation.MaxTokens)
	assert.InDelta(t, 0.85, cfg.Generation.StandardTemperature, 1e-6)
	assert.InDelta(t, 1.0, cfg.Generation.UnfilteredTemperature, 1e-6)
	assert.Equal(t, 20*time.Second, cfg.Generation.RequestTimeout)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, 1, cfg.HTTP.FreeGenerations)
	assert.Equal(t, 100, cfg.Redis.HistoryLimit)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigFileWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
generation:
  api_key: file-key
  model: file-model
  request_timeout: 5s
http:
  environment: production
telegram:
  allowed_ids: [1, 2]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("GENERATION_MODEL", "env-model")
	unsetEnv(t, "GROQ_API_KEY")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.Generation.APIKey)
	assert.Equal(t, "env-model", cfg.Generation.Model)
	assert.Equal(t, 5*time.Second, cfg.Generation.RequestTimeout)
	assert.Equal(t, []int64{1, 2}, cfg.Telegram.AllowedTelegramID)
	assert.True(t, cfg.IsProduction())
}

func TestLoadConfigRequiresAPIKey(t *testing.T) {
	unsetEnv(t, "GROQ_API_KEY")
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}
