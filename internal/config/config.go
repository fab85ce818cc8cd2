// Package config provides configuration loading and validation for the server.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jonathan/travel-planner/internal/llm"
)

// ServerConfig holds configuration for the HTTP server and its backing
// services. All values come from environment variables.
type ServerConfig struct {
	Port        int
	DatabaseURL string

	WeatherAPIKey string

	LLMProvider        llm.Provider
	LLMModel           string
	GeminiAPIKey       string
	GoogleCredentials  string // path to the service account JSON file
	GenerationEndpoint string // optional endpoint override
}

// NewServerConfig creates a server configuration from environment variables.
// It reads PORT (default: 5001), DATABASE_URL (required),
// OPENWEATHERMAP_API_KEY (required), LLM_PROVIDER (default: gemini-rest),
// LLM_MODEL, GEMINI_API_KEY, GOOGLE_APPLICATION_CREDENTIALS and
// GENERATION_ENDPOINT.
func NewServerConfig() (*ServerConfig, error) {
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "5001" // default
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %v", err)
	}

	provider := llm.Provider(os.Getenv("LLM_PROVIDER"))
	if provider == "" {
		provider = llm.ProviderGeminiREST
	}

	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = llm.DefaultModel
	}

	config := &ServerConfig{
		Port:               port,
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		WeatherAPIKey:      os.Getenv("OPENWEATHERMAP_API_KEY"),
		LLMProvider:        provider,
		LLMModel:           model,
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GoogleCredentials:  os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		GenerationEndpoint: os.Getenv("GENERATION_ENDPOINT"),
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *ServerConfig) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if c.WeatherAPIKey == "" {
		return fmt.Errorf("OPENWEATHERMAP_API_KEY is required but not set")
	}

	switch c.LLMProvider {
	case llm.ProviderGeminiREST:
		if c.GoogleCredentials == "" {
			return fmt.Errorf("GOOGLE_APPLICATION_CREDENTIALS is required for provider %q", c.LLMProvider)
		}
	case llm.ProviderGeminiSDK:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for provider %q", c.LLMProvider)
		}
	default:
		return fmt.Errorf("unknown LLM_PROVIDER: %q", c.LLMProvider)
	}

	return nil
}

// OverridePort replaces the configured port and re-runs validation.
// Used when a command-line flag takes precedence over the environment.
func (c *ServerConfig) OverridePort(port int) error {
	c.Port = port
	return c.normalize()
}

// LLMConfig converts the server configuration into a model client
// configuration.
func (c *ServerConfig) LLMConfig() *llm.Config {
	return &llm.Config{
		Provider:        c.LLMProvider,
		Model:           c.LLMModel,
		APIKey:          c.GeminiAPIKey,
		CredentialsFile: c.GoogleCredentials,
		Endpoint:        c.GenerationEndpoint,
	}
}
