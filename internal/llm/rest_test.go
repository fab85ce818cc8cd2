package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func staticTokens() oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"})
}

func TestRESTClient_GenerateContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		require.Len(t, req.Contents[0].Parts, 1)
		assert.Equal(t, "plan my trip", req.Contents[0].Parts[0].Text)

		fmt.Fprint(w, `{"candidates":[{"content":{"parts":[{"text":"{\"destination\":\"Tokyo\"}"}]}}]}`)
	}))
	defer srv.Close()

	client := NewRESTClientWithTokenSource(srv.URL, staticTokens())
	text, err := client.GenerateContent(context.Background(), "plan my trip")
	require.NoError(t, err)
	assert.Equal(t, `{"destination":"Tokyo"}`, text)
}

func TestRESTClient_ErrorStatusCarriesProviderBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"message":"quota exceeded"}}`)
	}))
	defer srv.Close()

	client := NewRESTClientWithTokenSource(srv.URL, staticTokens())
	_, err := client.GenerateContent(context.Background(), "plan my trip")
	require.Error(t, err)

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, http.StatusTooManyRequests, genErr.StatusCode)
	assert.Contains(t, genErr.Body, "quota exceeded")
}

func TestRESTClient_MalformedEnvelope(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no candidates", `{"candidates":[]}`},
		{"no parts", `{"candidates":[{"content":{"parts":[]}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				fmt.Fprint(w, tt.body)
			}))
			defer srv.Close()

			client := NewRESTClientWithTokenSource(srv.URL, staticTokens())
			_, err := client.GenerateContent(context.Background(), "plan my trip")

			var genErr *GenerationError
			require.ErrorAs(t, err, &genErr)
		})
	}
}

type failingTokenSource struct{}

func (failingTokenSource) Token() (*oauth2.Token, error) {
	return nil, errors.New("key rejected")
}

func TestRESTClient_TokenFailureIsAuthError(t *testing.T) {
	client := NewRESTClientWithTokenSource("http://unused.invalid", failingTokenSource{})
	_, err := client.GenerateContent(context.Background(), "plan my trip")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
}
