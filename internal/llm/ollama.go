package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"
)

// OllamaClient implements Client for a local Ollama server
type OllamaClient struct {
	client *api.Client
	config *Config
}

// NewOllamaClient creates a client for the configured Ollama host. An empty
// host falls back to the OLLAMA_HOST environment variable or the default
// localhost port.
func NewOllamaClient(config *Config) (*OllamaClient, error) {
	var client *api.Client
	if config.Host == "" {
		var err error
		client, err = api.ClientFromEnvironment()
		if err != nil {
			return nil, fmt.Errorf("failed to create Ollama client: %w", err)
		}
	} else {
		u, err := url.Parse(config.Host)
		if err != nil {
			return nil, fmt.Errorf("invalid Ollama host %q: %w", config.Host, err)
		}
		client = api.NewClient(u, http.DefaultClient)
	}

	return &OllamaClient{
		client: client,
		config: config,
	}, nil
}

// GenerateContent generates text content for a prompt
func (c *OllamaClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	stream := false
	req := &api.ChatRequest{
		Model: c.config.Model,
		Messages: []api.Message{
			{Role: "user", Content: prompt},
		},
		Stream: &stream,
		Options: map[string]any{
			"temperature": c.config.Temperature,
		},
	}

	var sb strings.Builder
	err := c.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		sb.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return sb.String(), nil
}

// Close is a no-op; the Ollama client holds no persistent resources
func (c *OllamaClient) Close() error {
	return nil
}
