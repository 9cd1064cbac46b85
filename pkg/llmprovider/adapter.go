package llmprovider

import (
	"context"
	"errors"
	"fmt"

	"filmbuff-ai/pkg/gemini"
	"filmbuff-ai/pkg/openai"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: toGeminiContent(req.SystemInstruction),
		Messages:          toGeminiContents(req.Messages),
		Tools:             toGeminiTools(req.Tools),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, classify(err, errors.Is(err, gemini.ErrUnauthorized), errors.Is(err, gemini.ErrRateLimited))
	}

	out := &Response{
		Content:      fromGeminiContent(resp.Content),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return ProviderGemini
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// OpenAIAdapter adapts any OpenAI-compatible vendor (openai, deepseek, qwen).
type OpenAIAdapter struct {
	name   string
	client openai.IOpenAI
}

// NewOpenAIAdapter creates an adapter reporting itself under name.
func NewOpenAIAdapter(name string, client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &openai.Request{
		SystemInstruction: toOpenAIContent(req.SystemInstruction),
		Messages:          toOpenAIContents(req.Messages),
		Tools:             toOpenAITools(req.Tools),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, classify(err, errors.Is(err, openai.ErrUnauthorized), errors.Is(err, openai.ErrRateLimited))
	}

	out := &Response{
		Content:      fromOpenAIContent(resp.Content),
		ProviderName: a.name,
		ModelName:    a.client.Model(),
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

// classify attaches the package sentinel matching a client error.
func classify(err error, unauthorized, rateLimited bool) error {
	switch {
	case unauthorized:
		return fmt.Errorf("%w: %w", ErrProviderAuth, err)
	case rateLimited:
		return fmt.Errorf("%w: %w", ErrProviderRateLimited, err)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrProviderTimeout, err)
	}
	return err
}

// Conversion helpers for Gemini
func toGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &gemini.FunctionCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &gemini.FunctionResponse{Name: p.FunctionResponse.Name, Response: p.FunctionResponse.Response}
		}
	}
	return &gemini.Content{Role: msg.Role, Parts: parts}
}

func toGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i := range msgs {
		contents[i] = *toGeminiContent(&msgs[i])
	}
	return contents
}

func toGeminiTools(tools []Tool) []gemini.Tool {
	out := make([]gemini.Tool, len(tools))
	for i, t := range tools {
		out[i] = gemini.Tool{Name: t.Name, Description: t.Description, Parameters: t.Parameters}
	}
	return out
}

func fromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &FunctionCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &FunctionResponse{Name: p.FunctionResponse.Name, Response: p.FunctionResponse.Response}
		}
	}
	return Message{Role: RoleAssistant, Parts: parts}
}

// Conversion helpers for OpenAI-compatible vendors
func toOpenAIContent(msg *Message) *openai.Content {
	if msg == nil {
		return nil
	}
	parts := make([]openai.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = openai.Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &openai.FunctionCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
		if p.FunctionResponse != nil {
			parts[i].FunctionResponse = &openai.FunctionResponse{Name: p.FunctionResponse.Name, Response: p.FunctionResponse.Response}
		}
	}
	return &openai.Content{Role: msg.Role, Parts: parts}
}

func toOpenAIContents(msgs []Message) []openai.Content {
	contents := make([]openai.Content, len(msgs))
	for i := range msgs {
		contents[i] = *toOpenAIContent(&msgs[i])
	}
	return contents
}

func toOpenAITools(tools []Tool) []openai.Tool {
	out := make([]openai.Tool, len(tools))
	for i, t := range tools {
		out[i] = openai.Tool{Name: t.Name, Description: t.Description, Parameters: t.Parameters}
	}
	return out
}

func fromOpenAIContent(content openai.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
		if p.FunctionCall != nil {
			parts[i].FunctionCall = &FunctionCall{Name: p.FunctionCall.Name, Args: p.FunctionCall.Args}
		}
	}
	return Message{Role: RoleAssistant, Parts: parts}
}
