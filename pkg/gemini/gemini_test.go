package gemini_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmbuff-ai/pkg/gemini"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := gemini.New(gemini.Config{})
	require.Error(t, err)
}

func TestGenerateContent(t *testing.T) {
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "test-api-key", r.Header.Get("x-goog-api-key"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates": [{
				"content": {"role": "model", "parts": [
					{"text": "Dune (2021)"},
					{"functionCall": {"name": "search_movies", "args": {"query": "dune"}}}
				]},
				"finishReason": "STOP"
			}],
			"usageMetadata": {"promptTokenCount": 12, "candidatesTokenCount": 4, "totalTokenCount": 16}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", Model: "test-model", APIURL: ts.URL})
	require.NoError(t, err)

	resp, err := client.GenerateContent(context.Background(), &gemini.Request{
		SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: "be brief"}}},
		Messages: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: "dune"}}},
			{Role: "assistant", Parts: []gemini.Part{{Text: "which one?"}}},
		},
		Tools:       []gemini.Tool{{Name: "search_movies", Description: "search"}},
		Temperature: 0.5,
	})
	require.NoError(t, err)

	require.Len(t, resp.Content.Parts, 2)
	assert.Equal(t, "Dune (2021)", resp.Content.Parts[0].Text)
	require.NotNil(t, resp.Content.Parts[1].FunctionCall)
	assert.Equal(t, "search_movies", resp.Content.Parts[1].FunctionCall.Name)
	assert.Equal(t, "dune", resp.Content.Parts[1].FunctionCall.Args["query"])
	assert.Equal(t, "STOP", resp.FinishReason)
	assert.Equal(t, 16, resp.Usage.TotalTokens)

	contents := got["contents"].([]any)
	require.Len(t, contents, 2)
	assert.Equal(t, "model", contents[1].(map[string]any)["role"])
	assert.NotNil(t, got["system_instruction"])
	assert.NotNil(t, got["generationConfig"])
}

func TestGenerateContent_StatusErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, gemini.ErrUnauthorized},
		{"rate limited", http.StatusTooManyRequests, gemini.ErrRateLimited},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tt.status)
			}))
			defer ts.Close()

			client, err := gemini.New(gemini.Config{APIKey: "k", APIURL: ts.URL})
			require.NoError(t, err)

			_, err = client.GenerateContent(context.Background(), &gemini.Request{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want))

			var se *gemini.StatusError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.status, se.StatusCode)
		})
	}
}

func TestGenerateContent_NoCandidates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "k", APIURL: ts.URL})
	require.NoError(t, err)

	resp, err := client.GenerateContent(context.Background(), &gemini.Request{})
	require.NoError(t, err)
	assert.Empty(t, resp.Content.Parts)
	require.NotNil(t, resp.Usage)
}
