package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"filmbuff-ai/pkg/llmprovider"
)

// Invoke runs the ReAct loop: Reason → Act → Observe.
// Exhausting the step budget is not an error; whatever text was produced is returned.
func (s *Specialist) Invoke(ctx context.Context, instructions, query string) (string, error) {
	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  llmprovider.RoleSystem,
			Parts: []llmprovider.Part{{Text: s.system}},
		},
		Messages: []llmprovider.Message{{
			Role:  llmprovider.RoleUser,
			Parts: []llmprovider.Part{{Text: fmt.Sprintf(TaskTemplate, query, instructions)}},
		}},
		Tools:       s.registry.ToFunctionDefinitions(),
		Temperature: s.temperature,
	}

	var partial string
	for step := 0; step < s.maxSteps; step++ {
		s.l.Debugf(ctx, "%s: %s step %d/%d", LogPrefixInvoke, s.role.Capability, step+1, s.maxSteps)

		// 1. Reason
		resp, err := s.llm.GenerateContent(ctx, req)
		if err != nil {
			return "", fmt.Errorf(ErrMsgAgentLLMError+": %w", s.role.Capability, step+1, err)
		}
		if resp == nil || len(resp.Content.Parts) == 0 {
			return "", errors.New(ErrMsgEmptyLLMResponse)
		}

		text := strings.TrimSpace(resp.Content.Text())
		if text != "" {
			partial = text
		}

		calls := resp.Content.FunctionCalls()
		if len(calls) == 0 {
			s.l.Infof(ctx, "%s: %s finished at step %d", LogPrefixInvoke, s.role.Capability, step+1)
			return text, nil
		}

		// 2. Act, 3. Observe
		req.Messages = append(req.Messages, llmprovider.Message{
			Role:  llmprovider.RoleAssistant,
			Parts: resp.Content.Parts,
		})
		for _, call := range calls {
			req.Messages = append(req.Messages, llmprovider.Message{
				Role: llmprovider.RoleUser,
				Parts: []llmprovider.Part{{
					FunctionResponse: &llmprovider.FunctionResponse{
						Name:     call.Name,
						Response: s.runTool(ctx, call),
					},
				}},
			})
		}
	}

	s.l.Warnf(ctx, "%s: %s exceeded max steps (%d)", LogPrefixInvoke, s.role.Capability, s.maxSteps)
	return partial, nil
}

// runTool executes one call. Tool failures are reported back to the model, not to the caller.
func (s *Specialist) runTool(ctx context.Context, call *llmprovider.FunctionCall) interface{} {
	s.l.Infof(ctx, "%s: %s calling tool %s with args %+v", LogPrefixInvoke, s.role.Capability, call.Name, call.Args)

	tool, ok := s.registry.Get(call.Name)
	if !ok {
		s.l.Warnf(ctx, "%s: tool %s not available to %s", LogPrefixInvoke, call.Name, s.role.Capability)
		return map[string]string{"error": ErrMsgToolNotFound}
	}

	res, err := tool.Execute(ctx, call.Args)
	if err != nil {
		s.l.Warnf(ctx, "%s: tool %s failed: %v", LogPrefixInvoke, call.Name, err)
		return map[string]string{"error": err.Error()}
	}
	return res
}
