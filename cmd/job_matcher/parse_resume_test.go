package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/config"
)

func TestLLMConfig_GroqDefaults(t *testing.T) {
	cfg, key, err := llmConfig("groq", "", "gsk_test")
	require.NoError(t, err)
	assert.Equal(t, "gsk_test", key)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.Model)
}

func TestLLMConfig_ModelOverride(t *testing.T) {
	cfg, _, err := llmConfig("gemini", "gemini-2.5-pro", "AIza_test")
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
}

func TestLLMConfig_UnknownProvider(t *testing.T) {
	_, _, err := llmConfig("openai", "", "key")
	assert.Error(t, err)
}

func TestLLMConfig_MissingAPIKey(t *testing.T) {
	_, _, err := llmConfig("groq", "", "")
	assert.Error(t, err)
}

func TestResolveConfig_FlagsWinOverFileAndEnv(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk_env")
	t.Setenv("DATABASE_URL", "postgres://env/jobs")

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"provider": "groq",
		"model": "llama-3.1-8b-instant",
		"database_url": "postgres://file/jobs",
		"feed_concurrency": 4
	}`), 0o644))

	cfg, err := resolveConfig(path, config.Config{Model: "llama-3.3-70b-versatile"})
	require.NoError(t, err)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.Model, "flag beats file")
	assert.Equal(t, "postgres://file/jobs", cfg.DatabaseURL, "file beats env")
	assert.Equal(t, "gsk_env", cfg.APIKey, "env fills what is left")
	assert.Equal(t, 4, cfg.FeedConcurrency)
}

func TestResolveConfig_NoFile(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "")

	cfg, err := resolveConfig("", config.Config{Provider: "gemini"})
	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.Provider)
	assert.Empty(t, cfg.APIKey)
}

func TestResolveConfig_InvalidProvider(t *testing.T) {
	_, err := resolveConfig("", config.Config{Provider: "openai"})
	assert.Error(t, err)
}

func TestWriteJSON_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, writeJSON(path, map[string]int{"score": 63}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"score": 63`)
}
