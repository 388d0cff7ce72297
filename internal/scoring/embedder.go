package scoring

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ollama/ollama/api"
)

// OllamaEmbedder embeds text chunks using a local Ollama embedding model
type OllamaEmbedder struct {
	client *api.Client
	model  string
}

// NewOllamaEmbedder creates an embedder for the given model. An empty host
// falls back to the OLLAMA_HOST environment variable or the default
// localhost port.
func NewOllamaEmbedder(host, model string) (*OllamaEmbedder, error) {
	if model == "" {
		model = "all-minilm"
	}

	var client *api.Client
	if host == "" {
		var err error
		client, err = api.ClientFromEnvironment()
		if err != nil {
			return nil, fmt.Errorf("failed to create Ollama client: %w", err)
		}
	} else {
		u, err := url.Parse(host)
		if err != nil {
			return nil, fmt.Errorf("invalid Ollama host %q: %w", host, err)
		}
		client = api.NewClient(u, http.DefaultClient)
	}

	return &OllamaEmbedder{client: client, model: model}, nil
}

// Embed returns one fixed-dimension vector per input chunk
func (e *OllamaEmbedder) Embed(ctx context.Context, chunks []string) ([][]float32, error) {
	resp, err := e.client.Embed(ctx, &api.EmbedRequest{
		Model: e.model,
		Input: chunks,
	})
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	if len(resp.Embeddings) != len(chunks) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d chunks", len(resp.Embeddings), len(chunks))
	}
	return resp.Embeddings, nil
}
