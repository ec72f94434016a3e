package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateContent_Success(t *testing.T) {
	var captured struct {
		path   string
		apiKey string
		body   generateContentRequest
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.apiKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured.body))

		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{
					{"text": "Ticker | Move\n"},
					{"text": "GME | +12%"},
				}}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	text, err := c.GenerateContent(context.Background(), Request{
		APIKey:    "test-key",
		Model:     "gemini-2.5-pro",
		Prompt:    "list meme stocks",
		WebSearch: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "Ticker | Move\nGME | +12%", text)
	assert.Equal(t, "/models/gemini-2.5-pro:generateContent", captured.path)
	assert.Equal(t, "test-key", captured.apiKey)

	require.Len(t, captured.body.Contents, 1)
	require.Len(t, captured.body.Contents[0].Parts, 1)
	assert.Equal(t, "list meme stocks", captured.body.Contents[0].Parts[0].Text)

	require.Len(t, captured.body.Tools, 1, "grounding tool must ride along")
	assert.NotNil(t, captured.body.Tools[0].GoogleSearch)
}

func TestGenerateContent_NoWebSearchOmitsTools(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, hasTools := body["tools"]
		assert.False(t, hasTools)

		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "ok"}}}},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	text, err := c.GenerateContent(context.Background(), Request{APIKey: "k", Model: "m", Prompt: "p"})
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
}

func TestGenerateContent_APIErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"code":    429,
				"message": "Resource has been exhausted",
				"status":  "RESOURCE_EXHAUSTED",
			},
		})
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	_, err := c.GenerateContent(context.Background(), Request{APIKey: "k", Model: "m", Prompt: "p"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RESOURCE_EXHAUSTED")
	assert.Contains(t, err.Error(), "429")
}

func TestGenerateContent_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	_, err := c.GenerateContent(context.Background(), Request{APIKey: "k", Model: "m", Prompt: "p"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text candidates")
}
