package openai_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmbuff-ai/pkg/openai"
)

type wireMessage struct {
	Role       string `json:"role"`
	Content    string `json:"content"`
	ToolCallID string `json:"tool_call_id"`
	ToolCalls  []struct {
		ID       string `json:"id"`
		Function struct {
			Name      string `json:"name"`
			Arguments string `json:"arguments"`
		} `json:"function"`
	} `json:"tool_calls"`
}

type wireRequest struct {
	Model    string        `json:"model"`
	Messages []wireMessage `json:"messages"`
	Tools    []struct {
		Type string `json:"type"`
	} `json:"tools"`
}

func TestGenerateContent(t *testing.T) {
	var got wireRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"model": "m",
			"choices": [{
				"index": 0,
				"finish_reason": "tool_calls",
				"message": {
					"role": "assistant",
					"content": "",
					"tool_calls": [{"id": "x", "type": "function",
						"function": {"name": "get_movie_details", "arguments": "{\"movie_id\": 438631}"}}]
				}
			}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
		}`))
	}))
	defer ts.Close()

	client, err := openai.New(openai.Config{APIKey: "sk-test", Model: "m", BaseURL: ts.URL + "/"})
	require.NoError(t, err)

	resp, err := client.GenerateContent(context.Background(), &openai.Request{
		SystemInstruction: &openai.Content{Parts: []openai.Part{{Text: "system"}}},
		Messages: []openai.Content{
			{Role: "user", Parts: []openai.Part{{Text: "dune details"}}},
			{Role: "model", Parts: []openai.Part{{FunctionCall: &openai.FunctionCall{
				Name: "search_movies", Args: map[string]interface{}{"query": "dune"}}}}},
			{Role: "user", Parts: []openai.Part{{FunctionResponse: &openai.FunctionResponse{
				Name: "search_movies", Response: map[string]interface{}{"ok": true}}}}},
		},
		Tools: []openai.Tool{{Name: "get_movie_details"}},
	})
	require.NoError(t, err)

	require.Len(t, got.Messages, 4)
	assert.Equal(t, "m", got.Model)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "assistant", got.Messages[2].Role)
	require.Len(t, got.Messages[2].ToolCalls, 1)
	assert.Equal(t, "tool", got.Messages[3].Role)
	assert.Equal(t, got.Messages[2].ToolCalls[0].ID, got.Messages[3].ToolCallID)
	require.Len(t, got.Tools, 1)
	assert.Equal(t, "function", got.Tools[0].Type)

	require.Len(t, resp.Content.Parts, 1)
	fc := resp.Content.Parts[0].FunctionCall
	require.NotNil(t, fc)
	assert.Equal(t, "get_movie_details", fc.Name)
	assert.EqualValues(t, 438631, fc.Args["movie_id"])
	assert.Equal(t, "tool_calls", resp.FinishReason)
	assert.Equal(t, 15, resp.Usage.TotalTokens)
}

func TestGenerateContent_StatusErrors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"slow down"}`, http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client, err := openai.New(openai.Config{APIKey: "k", BaseURL: ts.URL})
	require.NoError(t, err)

	_, err = client.GenerateContent(context.Background(), &openai.Request{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, openai.ErrRateLimited))
	assert.False(t, errors.Is(err, openai.ErrUnauthorized))
}

func TestGenerateContent_BadToolArguments(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": [{"message": {"role": "assistant",
			"tool_calls": [{"type": "function", "function": {"name": "t", "arguments": "{not json"}}]}}]}`))
	}))
	defer ts.Close()

	client, err := openai.New(openai.Config{APIKey: "k", BaseURL: ts.URL})
	require.NoError(t, err)

	resp, err := client.GenerateContent(context.Background(), &openai.Request{})
	require.NoError(t, err)
	require.Len(t, resp.Content.Parts, 1)
	assert.Empty(t, resp.Content.Parts[0].FunctionCall.Args)
}
