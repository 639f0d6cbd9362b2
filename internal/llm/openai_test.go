package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIClient_EndpointNormalization(t *testing.T) {
	cases := map[string]string{
		"":                          "https://api.openai.com/v1/chat/completions",
		"https://proxy.local":       "https://proxy.local/v1/chat/completions",
		"https://proxy.local/v1":    "https://proxy.local/v1/chat/completions",
		"https://proxy.local/v1/chat/completions": "https://proxy.local/v1/chat/completions",
	}
	for baseURL, want := range cases {
		c := NewOpenAIClient("key", "model", baseURL)
		assert.Equal(t, want, c.endpoint, "base %q", baseURL)
	}
}

func TestOpenAIClient_CompleteSendsSystemAndPrompt(t *testing.T) {
	var got openAIChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(openAIChatResponse{
			Choices: []struct {
				Message openAIChatMessage `json:"message"`
			}{{Message: openAIChatMessage{Role: "assistant", Content: "const x = 1;"}}},
		})
	}))
	defer srv.Close()

	c := NewOpenAIClient("key", "gpt-4o-mini", srv.URL)
	text, err := c.Complete(context.Background(), Request{
		Prompt:      "Generate a Navbar",
		System:      "TSX only",
		MaxTokens:   2048,
		Temperature: 0.4,
	})
	require.NoError(t, err)
	assert.Equal(t, "const x = 1;", text)

	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "TSX only", got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, 2048, got.MaxTokens)
	assert.Equal(t, 0.4, got.Temperature)
}

func TestOpenAIClient_HTTPErrorIsServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewOpenAIClient("key", "gpt-4o-mini", srv.URL)
	_, err := c.Complete(context.Background(), Request{Prompt: "hi"})
	require.Error(t, err)

	var serr *ServiceError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "openai", serr.Provider)
	assert.Contains(t, serr.Error(), "429")
}

func TestOpenAIClient_EmptyResponseIsServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(openAIChatResponse{})
	}))
	defer srv.Close()

	c := NewOpenAIClient("key", "gpt-4o-mini", srv.URL)
	_, err := c.Complete(context.Background(), Request{Prompt: "hi"})

	var serr *ServiceError
	require.True(t, errors.As(err, &serr))
}

func TestOpenAIClient_MissingKeyFailsWithoutCall(t *testing.T) {
	c := NewOpenAIClient("", "gpt-4o-mini", "")
	_, err := c.Complete(context.Background(), Request{Prompt: "hi"})

	var serr *ServiceError
	require.True(t, errors.As(err, &serr))
	assert.Contains(t, err.Error(), "api key")
}
