package openai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
)

func newImpl(cfg Config) *impl {
	return &impl{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent posts to /chat/completions.
func (c *impl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(c.transformRequest(req))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var out openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("openai: failed to decode response: %w", err)
	}
	return c.transformResponse(&out), nil
}

// Model returns the model being used
func (c *impl) Model() string {
	return c.model
}

func (c *impl) transformRequest(req *Request) *openAIRequest {
	out := &openAIRequest{
		Model:       c.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]openAIMessage, 0, len(req.Messages)+1),
	}

	if req.SystemInstruction != nil {
		sys := transformMessage(req.SystemInstruction)
		sys.Role = "system"
		out.Messages = append(out.Messages, sys)
	}
	for i := range req.Messages {
		out.Messages = append(out.Messages, transformMessage(&req.Messages[i]))
	}

	if len(req.Tools) > 0 {
		out.Tools = make([]openAITool, len(req.Tools))
		for i, tool := range req.Tools {
			out.Tools[i] = openAITool{
				Type: "function",
				Function: openAIFunctionDecl{
					Name:        tool.Name,
					Description: tool.Description,
					Parameters:  tool.Parameters,
				},
			}
		}
	}
	return out
}

func transformMessage(msg *Content) openAIMessage {
	out := openAIMessage{Role: msg.Role}
	if out.Role == "model" {
		out.Role = "assistant"
	}

	for _, part := range msg.Parts {
		if part.Text != "" {
			if out.Content != "" {
				out.Content += "\n"
			}
			out.Content += part.Text
		}

		if part.FunctionCall != nil {
			args, _ := json.Marshal(part.FunctionCall.Args)
			out.Role = "assistant"
			out.ToolCalls = append(out.ToolCalls, openAIToolCall{
				ID:   callID(part.FunctionCall.Name),
				Type: "function",
				Function: openAIFunctionCall{
					Name:      part.FunctionCall.Name,
					Arguments: string(args),
				},
			})
		}

		if part.FunctionResponse != nil {
			out.Role = "tool"
			out.ToolCallID = callID(part.FunctionResponse.Name)
			payload, _ := json.Marshal(part.FunctionResponse.Response)
			out.Content = string(payload)
		}
	}
	return out
}

// callID pairs a tool call with its response. One call per tool per turn.
func callID(name string) string {
	return "call_" + name
}

func (c *impl) transformResponse(resp *openAIResponse) *Response {
	usage := &Usage{
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		TotalTokens:  resp.Usage.TotalTokens,
	}
	if len(resp.Choices) == 0 {
		return &Response{Usage: usage}
	}

	choice := resp.Choices[0]
	msg := Content{Role: choice.Message.Role, Parts: make([]Part, 0, 1)}
	if choice.Message.Content != "" {
		msg.Parts = append(msg.Parts, Part{Text: choice.Message.Content})
	}

	for _, tc := range choice.Message.ToolCalls {
		if tc.Type != "function" {
			continue
		}
		args := make(map[string]interface{})
		if tc.Function.Arguments != "" {
			if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
				args = make(map[string]interface{})
			}
		}
		msg.Parts = append(msg.Parts, Part{
			FunctionCall: &FunctionCall{Name: tc.Function.Name, Args: args},
		})
	}

	return &Response{
		Content:      msg,
		FinishReason: choice.FinishReason,
		Usage:        usage,
	}
}
