// Package llm provides generative model clients and configuration for
// itinerary generation.
package llm

import "fmt"

// Provider represents a generative model access path.
type Provider string

// Provider constants define the supported access paths.
const (
	// ProviderGeminiREST calls the Generative Language REST endpoint
	// directly, authenticating with an OAuth2 service-account credential.
	ProviderGeminiREST Provider = "gemini-rest"
	// ProviderGeminiSDK uses the official Gemini SDK with an API key.
	ProviderGeminiSDK Provider = "gemini-sdk"
)

// DefaultModel is the generation model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// endpointFormat builds the REST generateContent URL for a model.
const endpointFormat = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"

// Config holds the model configuration for the application.
type Config struct {
	Provider Provider
	Model    string

	// APIKey authenticates the SDK provider.
	APIKey string

	// CredentialsFile points at a service-account key for the REST
	// provider. CredentialsJSON takes precedence when set.
	CredentialsFile string
	CredentialsJSON []byte

	// Endpoint overrides the derived REST endpoint. Used in tests.
	Endpoint string
}

// DefaultConfig returns the default configuration: the REST provider with
// the default model.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGeminiREST,
		Model:    DefaultModel,
	}
}

// endpoint returns the REST endpoint for the configured model.
func (c *Config) endpoint() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	model := c.Model
	if model == "" {
		model = DefaultModel
	}
	return fmt.Sprintf(endpointFormat, model)
}
