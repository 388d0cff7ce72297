// Package config provides configuration loading and validation for the
// intake service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the service configuration that can be loaded from a JSON
// file. Environment variables override file values; missing values use
// defaults.
type Config struct {
	// Server
	Port int `json:"port,omitempty"`

	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	UploadDir   string `json:"upload_dir,omitempty"`   // Root directory for persisted uploads

	// Language model
	Provider     string `json:"provider,omitempty"`       // "gemini" or "ollama"
	Model        string `json:"model,omitempty"`          // Chat model name
	GeminiAPIKey string `json:"gemini_api_key,omitempty"` // Gemini API key
	OllamaHost   string `json:"ollama_host,omitempty"`    // Ollama server URL
	EmbedModel   string `json:"embed_model,omitempty"`    // Embedding model name

	// Notifications
	ResendAPIKey string `json:"resend_api_key,omitempty"` // Resend API key
	MailFrom     string `json:"mail_from,omitempty"`      // Sender address
	BookingLink  string `json:"booking_link,omitempty"`   // Interview scheduling link

	// Behavior
	CapabilityTimeoutSecs int `json:"capability_timeout_secs,omitempty"`  // Bound on each external capability call
	ErrorLogRetentionDays int `json:"error_log_retention_days,omitempty"` // 0 disables automatic pruning
}

// Default returns a Config with baseline values
func Default() *Config {
	return &Config{
		Port:                  8080,
		UploadDir:             "uploads",
		Provider:              "gemini",
		CapabilityTimeoutSecs: 60,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides config values from environment variables
func (c *Config) ApplyEnv() {
	setString(&c.DatabaseURL, "DATABASE_URL")
	setString(&c.UploadDir, "UPLOAD_DIR")
	setString(&c.Provider, "LLM_PROVIDER")
	setString(&c.Model, "LLM_MODEL")
	setString(&c.GeminiAPIKey, "GEMINI_API_KEY")
	setString(&c.OllamaHost, "OLLAMA_HOST")
	setString(&c.EmbedModel, "EMBED_MODEL")
	setString(&c.ResendAPIKey, "RESEND_API_KEY")
	setString(&c.MailFrom, "MAIL_FROM")
	setString(&c.BookingLink, "BOOKING_LINK")
	setInt(&c.Port, "PORT")
	setInt(&c.CapabilityTimeoutSecs, "CAPABILITY_TIMEOUT_SECS")
	setInt(&c.ErrorLogRetentionDays, "ERROR_LOG_RETENTION_DAYS")
}

// Validate checks that the configuration has valid values
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("config error: 'database_url' is required")
	}
	if c.Provider != "gemini" && c.Provider != "ollama" {
		return fmt.Errorf("config error: 'provider' must be \"gemini\" or \"ollama\", got %q", c.Provider)
	}
	if c.Provider == "gemini" && c.GeminiAPIKey == "" {
		return fmt.Errorf("config error: 'gemini_api_key' is required for the gemini provider")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in (0, 65535]")
	}
	if c.CapabilityTimeoutSecs < 0 {
		return fmt.Errorf("config error: 'capability_timeout_secs' must be non-negative")
	}
	if c.ErrorLogRetentionDays < 0 {
		return fmt.Errorf("config error: 'error_log_retention_days' must be non-negative")
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
