package llm

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// SDKClient implements Client using the official Gemini SDK with an API key.
type SDKClient struct {
	client *genai.Client
	model  string
}

// NewSDKClient creates a new SDK-backed client.
func NewSDKClient(ctx context.Context, config *Config) (*SDKClient, error) {
	if config.APIKey == "" {
		return nil, &AuthError{Message: "API key is required for the SDK provider"}
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(config.APIKey))
	if err != nil {
		return nil, &AuthError{Message: "failed to create Gemini client", Cause: err}
	}

	model := config.Model
	if model == "" {
		model = DefaultModel
	}

	return &SDKClient{
		client: client,
		model:  model,
	}, nil
}

// GenerateContent sends the prompt to the model and returns the raw text.
func (c *SDKClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &GenerationError{Message: "failed to generate content", Cause: err}
	}

	return extractTextFromResponse(resp)
}

// Close releases resources held by the client.
func (c *SDKClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from a Gemini SDK response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", &GenerationError{Message: "no candidates in response"}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &GenerationError{Message: "no content in response"}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", &GenerationError{Message: "no text parts in response"}
	}

	return strings.Join(parts, ""), nil
}
