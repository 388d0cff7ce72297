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
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"port": 9090,
		"database_url": "postgres://localhost/intake",
		"provider": "ollama",
		"model": "mistral:7b",
		"error_log_retention_days": 14
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/intake", cfg.DatabaseURL)
	assert.Equal(t, "ollama", cfg.Provider)
	assert.Equal(t, "mistral:7b", cfg.Model)
	assert.Equal(t, 14, cfg.ErrorLogRetentionDays)
	// Unset fields keep defaults
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, 60, cfg.CapabilityTimeoutSecs)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	t.Setenv("DATABASE_URL", "postgres://env/intake")
	t.Setenv("LLM_PROVIDER", "ollama")
	t.Setenv("PORT", "7070")
	t.Setenv("ERROR_LOG_RETENTION_DAYS", "7")

	cfg.ApplyEnv()

	assert.Equal(t, "postgres://env/intake", cfg.DatabaseURL)
	assert.Equal(t, "ollama", cfg.Provider)
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, 7, cfg.ErrorLogRetentionDays)
}

func TestApplyEnv_IgnoresUnsetAndMalformed(t *testing.T) {
	cfg := Default()
	cfg.DatabaseURL = "postgres://file/intake"
	t.Setenv("PORT", "not-a-number")

	cfg.ApplyEnv()

	assert.Equal(t, "postgres://file/intake", cfg.DatabaseURL)
	assert.Equal(t, 8080, cfg.Port)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.DatabaseURL = "postgres://localhost/intake"
		cfg.GeminiAPIKey = "key"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"missing database url", func(c *Config) { c.DatabaseURL = "" }, "'database_url' is required"},
		{"unknown provider", func(c *Config) { c.Provider = "openai" }, "'provider' must be"},
		{"gemini without key", func(c *Config) { c.GeminiAPIKey = "" }, "'gemini_api_key' is required"},
		{"ollama without key is fine", func(c *Config) { c.Provider = "ollama"; c.GeminiAPIKey = "" }, ""},
		{"port out of range", func(c *Config) { c.Port = 0 }, "'port' must be"},
		{"negative timeout", func(c *Config) { c.CapabilityTimeoutSecs = -1 }, "'capability_timeout_secs'"},
		{"negative retention", func(c *Config) { c.ErrorLogRetentionDays = -1 }, "'error_log_retention_days'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
