package llm

import (
	"context"
	"fmt"
)

// Client is an abstraction over generative model providers.
type Client interface {
	// GenerateContent sends a prompt to the model and returns the raw
	// generated text.
	GenerateContent(ctx context.Context, prompt string) (string, error)
	// Close releases any resources held by the client.
	Close() error
}

// NewClient creates a client based on configuration.
func NewClient(ctx context.Context, config *Config) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGeminiSDK:
		return NewSDKClient(ctx, config)
	case ProviderGeminiREST:
		return NewRESTClient(ctx, config)
	default:
		return nil, fmt.Errorf("unknown provider %q", config.Provider)
	}
}
