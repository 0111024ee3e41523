package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LLM_PROVIDER", "LLM_MODEL",
		"GOOGLE_API_KEY", "GEMINI_API_KEY", "OPENAI_API_KEY",
		"CHROME_PATH", "LINKEDIN_STORAGE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderGoogleAI, cfg.Provider)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Equal(t, DefaultStorageFile, cfg.StorageFile)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("LLM_MODEL", "gpt-4o-mini")
	t.Setenv("LINKEDIN_STORAGE", "/tmp/session.json")
	t.Setenv("GEMINI_API_KEY", "gkey")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, "/tmp/session.json", cfg.StorageFile)
	assert.Equal(t, "gkey", cfg.GoogleAPIKey)
}

func TestLoadUnknownProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "ollama")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown LLM_PROVIDER")
}

func TestNewModelMissingKeys(t *testing.T) {
	cfg := &Config{Provider: ProviderGoogleAI, Model: DefaultModel}
	_, err := cfg.NewModel(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_API_KEY")

	cfg = &Config{Provider: ProviderOpenAI, Model: "gpt-4o-mini"}
	_, err = cfg.NewModel(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}
