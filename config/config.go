package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	// ProviderGoogleAI is the default: the original sessions ran on Gemini.
	ProviderGoogleAI = "googleai"
	ProviderOpenAI   = "openai"

	DefaultModel       = "gemini-3-flash-preview"
	DefaultStorageFile = "linkedin_storage.json"
)

// Config carries everything the extraction tools need from the environment.
type Config struct {
	Provider     string
	Model        string
	GoogleAPIKey string
	OpenAIAPIKey string
	ChromePath   string
	StorageFile  string
}

// Load reads a .env file if one is present, then the process environment.
func Load() (*Config, error) {
	// A missing .env is fine; real env vars win either way.
	_ = godotenv.Load()

	cfg := &Config{
		Provider:     envOr("LLM_PROVIDER", ProviderGoogleAI),
		Model:        envOr("LLM_MODEL", DefaultModel),
		GoogleAPIKey: firstEnv("GOOGLE_API_KEY", "GEMINI_API_KEY"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		ChromePath:   os.Getenv("CHROME_PATH"),
		StorageFile:  envOr("LINKEDIN_STORAGE", DefaultStorageFile),
	}

	switch cfg.Provider {
	case ProviderGoogleAI, ProviderOpenAI:
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q (want %q or %q)", cfg.Provider, ProviderGoogleAI, ProviderOpenAI)
	}
	return cfg, nil
}

// NewModel constructs the chat model for the configured provider.
func (c *Config) NewModel(ctx context.Context) (llms.Model, error) {
	switch c.Provider {
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return nil, errors.New("OPENAI_API_KEY is not set")
		}
		return openai.New(
			openai.WithToken(c.OpenAIAPIKey),
			openai.WithModel(c.Model),
		)
	default:
		if c.GoogleAPIKey == "" {
			return nil, errors.New("GOOGLE_API_KEY (or GEMINI_API_KEY) is not set")
		}
		return googleai.New(ctx,
			googleai.WithAPIKey(c.GoogleAPIKey),
			googleai.WithDefaultModel(c.Model),
		)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}
