package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.APIKey = ""

	_, err := NewGeminiClient(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
}

func TestNewOllamaClient_ExplicitHost(t *testing.T) {
	cfg := DefaultOllamaConfig()
	cfg.Host = "http://localhost:11434"

	client, err := NewOllamaClient(cfg)
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.NoError(t, client.Close())
}

func TestNewClient_SelectsProvider(t *testing.T) {
	t.Run("ollama", func(t *testing.T) {
		cfg := DefaultOllamaConfig()
		cfg.Host = "http://localhost:11434"

		client, err := NewClient(context.Background(), cfg)
		require.NoError(t, err)
		_, ok := client.(*OllamaClient)
		assert.True(t, ok)
	})

	t.Run("gemini without key fails", func(t *testing.T) {
		cfg := DefaultConfig()
		_, err := NewClient(context.Background(), cfg)
		assert.Error(t, err)
	})

	t.Run("unknown provider falls back to gemini", func(t *testing.T) {
		cfg := &Config{Provider: "unknown"}
		_, err := NewClient(context.Background(), cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API key is required")
	})
}

func TestDefaultConfigs(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-2.0-flash-lite", cfg.Model)
	assert.InDelta(t, 0.1, cfg.Temperature, 1e-6)

	ollama := DefaultOllamaConfig()
	assert.Equal(t, ProviderOllama, ollama.Provider)
	assert.Equal(t, "mistral:7b", ollama.Model)
}
