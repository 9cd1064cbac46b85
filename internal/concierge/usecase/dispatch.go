package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"filmbuff-ai/internal/metrics"
	"filmbuff-ai/internal/model"
)

// dispatch answers direct intents with the general handler and fans complex
// intents out to specialists through a delegation plan.
func (uc *implUseCase) dispatch(ctx context.Context, query string, intent model.Intent) (string, error) {
	if intent.IsDirect() || len(intent.Capabilities) == 0 {
		return uc.invoke(ctx, model.RoutedTask{
			Capability:   model.CapabilityGeneral,
			Instructions: directInstructions,
			Attempt:      model.AttemptInitial,
		}, query)
	}
	return uc.delegate(ctx, query, intent.Capabilities)
}

func (uc *implUseCase) delegate(ctx context.Context, query string, caps []model.Capability) (string, error) {
	plan, err := uc.invoke(ctx, model.RoutedTask{
		Capability:   model.CapabilityGeneral,
		Instructions: buildPlanRequest(query, caps),
		Attempt:      model.AttemptInitial,
	}, query)
	if err != nil {
		return "", err
	}

	var outputs []string
	for _, task := range uc.planTasks(ctx, plan, query, caps) {
		text, err := uc.invoke(ctx, task, query)
		if err != nil {
			return "", err
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		outputs = append(outputs, fmt.Sprintf("## %s\n%s", planHeader(task.Capability), text))
	}
	if len(outputs) == 0 {
		uc.l.Warnf(ctx, "%s: no specialist produced output", LogPrefixDispatch)
		return "", nil
	}

	results := truncateRunes(strings.Join(outputs, "\n\n"), uc.cfg.SynthesisMaxLength, truncationMarker)
	return uc.invoke(ctx, model.RoutedTask{
		Capability:   model.CapabilityGeneral,
		Instructions: fmt.Sprintf(synthesisTemplate, results),
		Attempt:      model.AttemptInitial,
	}, query)
}

// planTasks builds one task per capability, in capability order. A capability the
// plan does not address gets the default instruction.
func (uc *implUseCase) planTasks(ctx context.Context, plan, query string, caps []model.Capability) []model.RoutedTask {
	tasks := make([]model.RoutedTask, 0, len(caps))
	for _, c := range caps {
		instructions, ok := extractInstructions(plan, c)
		if !ok {
			uc.l.Warnf(ctx, "%s: plan has no section for %s, using default instructions", LogPrefixDispatch, c)
			instructions = fmt.Sprintf(defaultInstructionTemplate, query)
		}
		tasks = append(tasks, model.RoutedTask{
			Capability:   c,
			Instructions: truncateRunes(instructions, uc.cfg.InstructionMaxLength, instructionEllipsis),
			Attempt:      model.AttemptInitial,
		})
	}
	return tasks
}

// invoke calls the handler bound to task.Capability under the per-call timeout.
// Hitting that timeout yields an empty result rather than an error.
func (uc *implUseCase) invoke(ctx context.Context, task model.RoutedTask, query string) (string, error) {
	h, err := uc.handlers.Handler(task.Capability)
	if err != nil {
		return "", err
	}

	callCtx, cancel := ctx, context.CancelFunc(func() {})
	if uc.cfg.HandlerTimeout > 0 {
		callCtx, cancel = context.WithTimeout(ctx, uc.cfg.HandlerTimeout)
	}
	defer cancel()

	uc.l.Debugf(ctx, "%s: invoking %s (%s)", LogPrefixDispatch, task.Capability, task.Attempt)
	text, err := h.Invoke(callCtx, task.Instructions, query)
	switch {
	case err == nil:
		metrics.RecordInvocation(string(task.Capability), metrics.StatusOK)
		return text, nil
	case ctx.Err() == nil && errors.Is(callCtx.Err(), context.DeadlineExceeded):
		metrics.RecordInvocation(string(task.Capability), metrics.StatusTimeout)
		uc.l.Warnf(ctx, "%s: %s timed out after %s", LogPrefixDispatch, task.Capability, uc.cfg.HandlerTimeout)
		return "", nil
	default:
		metrics.RecordInvocation(string(task.Capability), metrics.StatusError)
		return "", fmt.Errorf(ErrMsgHandlerFailed+": %w", task.Capability, task.Attempt, err)
	}
}
