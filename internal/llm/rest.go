package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// GenerativeLanguageScope is the OAuth2 scope for the generation API.
const GenerativeLanguageScope = "https://www.googleapis.com/auth/generative-language"

// restTimeout bounds a single generation round trip. Itineraries for long
// trips can take a while to generate.
const restTimeout = 120 * time.Second

// RESTClient calls the generateContent endpoint directly, attaching a
// bearer token obtained from a service-account credential.
type RESTClient struct {
	endpoint string
	tokens   oauth2.TokenSource
	http     *http.Client
}

// NewRESTClient builds a REST client from service-account key material.
// The credential's token source handles refresh internally; each request
// asks it for a current bearer token.
func NewRESTClient(ctx context.Context, config *Config) (*RESTClient, error) {
	data := config.CredentialsJSON
	if data == nil {
		if config.CredentialsFile == "" {
			return nil, &AuthError{Message: "service account credentials are required"}
		}
		var err error
		data, err = os.ReadFile(config.CredentialsFile)
		if err != nil {
			return nil, &AuthError{Message: "failed to read service account key", Cause: err}
		}
	}

	creds, err := google.CredentialsFromJSON(ctx, data, GenerativeLanguageScope)
	if err != nil {
		return nil, &AuthError{Message: "failed to parse service account key", Cause: err}
	}

	return &RESTClient{
		endpoint: config.endpoint(),
		tokens:   creds.TokenSource,
		http:     &http.Client{Timeout: restTimeout},
	}, nil
}

// NewRESTClientWithTokenSource builds a REST client with an explicit token
// source. Used in tests and by callers that manage credentials themselves.
func NewRESTClientWithTokenSource(endpoint string, tokens oauth2.TokenSource) *RESTClient {
	return &RESTClient{
		endpoint: endpoint,
		tokens:   tokens,
		http:     &http.Client{Timeout: restTimeout},
	}
}

// Request envelope for the generateContent endpoint: a single contents
// entry holding the prompt as one text part.
type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generatePart struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateContent requests a fresh access token, posts the prompt in the
// provider envelope and extracts the first candidate's first text part.
func (c *RESTClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	token, err := c.tokens.Token()
	if err != nil {
		return "", &AuthError{Message: "failed to obtain access token", Cause: err}
	}

	body, err := json.Marshal(generateRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: prompt}}}},
	})
	if err != nil {
		return "", &GenerationError{Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", &GenerationError{Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &GenerationError{Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &GenerationError{Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &GenerationError{
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
			Message:    "generation endpoint returned an error",
		}
	}

	var payload generateResponse
	if err := json.Unmarshal(respBody, &payload); err != nil {
		return "", &GenerationError{Message: "failed to decode response envelope", Cause: err}
	}

	if len(payload.Candidates) == 0 {
		return "", &GenerationError{Message: "no candidates in response", Body: string(respBody)}
	}
	if len(payload.Candidates[0].Content.Parts) == 0 {
		return "", &GenerationError{Message: "no content parts in response", Body: string(respBody)}
	}

	return payload.Candidates[0].Content.Parts[0].Text, nil
}

// Close is a no-op for the REST client.
func (c *RESTClient) Close() error {
	return nil
}
