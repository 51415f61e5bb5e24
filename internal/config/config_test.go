package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "env: development\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, defaultPort, cfg.Port)
	assert.True(t, cfg.IsDev())
	assert.Contains(t, cfg.DSN, "prayful")
	assert.Contains(t, cfg.RedisURL, "redis://")
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
port: 8080
env: production
allowed_origins:
  - "prayful.example.com"
database:
  host: db.internal
  port: 3306
  user: prayful
  password: secret
  name: prayful
redis:
  host: cache.internal
  port: 6380
  db: 2
ai:
  providers:
    - id: main
      name: OpenAI
      type: openai
      api_key: sk-test
      default_model: gpt-4o-mini
      enabled: true
  generation_model:
    provider_id: main
    model: gpt-4o
tts:
  openai_api_key: sk-tts
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.False(t, cfg.IsDev())
	assert.Contains(t, cfg.DSN, "db.internal")
	assert.Contains(t, cfg.RedisURL, "cache.internal:6380")
	require.Len(t, cfg.AI.Providers, 1)
	assert.True(t, cfg.AI.Providers[0].Enabled)
	require.NotNil(t, cfg.AI.GenerationModel)
	assert.Equal(t, "gpt-4o", cfg.AI.GenerationModel.Model)
	assert.Equal(t, "sk-tts", cfg.TTS.OpenAIAPIKey)
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, "prot: 8080\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidPort(t *testing.T) {
	path := writeConfig(t, "port: 70000\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}
