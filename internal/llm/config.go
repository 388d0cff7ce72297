package llm

// Provider identifies an LLM backend
type Provider string

const (
	// ProviderGemini uses the Google Gemini API
	ProviderGemini Provider = "gemini"
	// ProviderOllama uses a local Ollama server
	ProviderOllama Provider = "ollama"
)

// Config holds provider selection and model parameters
type Config struct {
	Provider    Provider
	Model       string
	APIKey      string  // Gemini only
	Host        string  // Ollama only; empty uses OLLAMA_HOST or the default localhost port
	Temperature float32 // low temperature keeps classification and summaries near-deterministic
}

// DefaultConfig returns the default provider configuration
func DefaultConfig() *Config {
	return &Config{
		Provider:    ProviderGemini,
		Model:       "gemini-2.0-flash-lite",
		Temperature: 0.1,
	}
}

// DefaultOllamaConfig returns a configuration for a local Ollama deployment
func DefaultOllamaConfig() *Config {
	return &Config{
		Provider:    ProviderOllama,
		Model:       "mistral:7b",
		Temperature: 0.1,
	}
}
