package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"filmbuff-ai/internal/concierge"
	"filmbuff-ai/internal/metrics"
	"filmbuff-ai/internal/model"
	pkgLog "filmbuff-ai/pkg/log"
)

var errNoAnswer = errors.New("no answer was produced")

// resolution is what the pipeline produced for one uncached query.
type resolution struct {
	answer  string
	intent  model.Intent
	retried bool
}

// Ask runs admission, cache lookup, classification, dispatch, the thin-result
// retry and the cache store for one query.
func (uc *implUseCase) Ask(ctx context.Context, sc model.Scope, input concierge.AskInput) (concierge.AskOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return concierge.AskOutput{}, concierge.ErrEmptyQuery
	}

	requestID := pkgLog.RequestID(ctx)
	if requestID == "" {
		requestID = uc.newID()
		ctx = pkgLog.WithRequestID(ctx, requestID)
	}
	start := uc.now()

	if !uc.limiter.TryAdmit() {
		wait := max(uc.limiter.SecondsUntilAvailable(), 1)
		metrics.RateLimitRejections.Inc()
		uc.l.Warnf(ctx, "%s: rate limited channel=%s user=%s retry_after=%ds", LogPrefixAsk, sc.Channel, sc.UserID, wait)
		return concierge.AskOutput{RequestID: requestID}, &concierge.RateLimitError{RetryAfter: wait}
	}

	uc.l.Infof(ctx, "%s: channel=%s user=%s query=%q", LogPrefixAsk, sc.Channel, sc.UserID, input.Query)

	if answer, ok := uc.cache.Lookup(ctx, input.Query); ok {
		metrics.RecordCacheLookup(true)
		metrics.RecordQuery("", metrics.OutcomeCached, uc.now().Sub(start))
		uc.l.Infof(ctx, "%s: cache hit", LogPrefixAsk)
		return concierge.AskOutput{Answer: answer, Cached: true, RequestID: requestID}, nil
	}
	metrics.RecordCacheLookup(false)

	res, err := uc.resolve(ctx, input.Query)
	out := concierge.AskOutput{
		Intent:    res.intent,
		Retried:   res.retried,
		RequestID: requestID,
	}
	category := string(res.intent.Category)

	if err != nil {
		uc.l.Errorf(ctx, "%s: query=%q failed: %v", LogPrefixAsk, input.Query, err)
		out.Answer = failureMessage(input.Query, err)
		out.Failed = true
		metrics.RecordQuery(category, metrics.OutcomeFailed, uc.now().Sub(start))
		return out, nil
	}

	uc.cache.Store(ctx, input.Query, res.answer)
	out.Answer = res.answer
	metrics.RecordQuery(category, metrics.OutcomeAnswered, uc.now().Sub(start))
	uc.l.Infof(ctx, "%s: answered category=%s retried=%t length=%d", LogPrefixAsk, category, res.retried, len(res.answer))
	return out, nil
}

// resolve classifies, dispatches and evaluates. Panics surface as errors.
func (uc *implUseCase) resolve(ctx context.Context, query string) (res resolution, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf(ErrMsgPanic, r)
		}
	}()

	res.intent = uc.router.Classify(ctx, query)

	answer, err := uc.dispatch(ctx, query, res.intent)
	if err != nil {
		return res, err
	}

	if uc.isThin(answer) {
		uc.l.Infof(ctx, "%s: thin result (%d chars), retrying once", LogPrefixRetry, len(strings.TrimSpace(answer)))
		res.retried = true
		answer = uc.retry(ctx, query, res.intent, answer)
	}

	if strings.TrimSpace(answer) == "" {
		return res, errNoAnswer
	}
	res.answer = answer
	return res, nil
}

func (uc *implUseCase) isThin(answer string) bool {
	return len([]rune(strings.TrimSpace(answer))) < uc.cfg.MinResultLength
}

// retry re-dispatches once with the stricter template. The original answer is
// kept unless the retry passes the length check.
func (uc *implUseCase) retry(ctx context.Context, query string, intent model.Intent, original string) string {
	task := model.RoutedTask{
		Capability:   retryCapability(intent),
		Instructions: retryInstructions(intent.Category, query),
		Attempt:      model.AttemptRetry,
	}

	text, err := uc.invoke(ctx, task, query)
	if err != nil {
		uc.l.Warnf(ctx, "%s: retry failed, keeping original: %v", LogPrefixRetry, err)
		metrics.RecordRetry(false)
		return original
	}
	if uc.isThin(text) {
		uc.l.Infof(ctx, "%s: retry also thin, keeping original", LogPrefixRetry)
		metrics.RecordRetry(false)
		return original
	}

	metrics.RecordRetry(true)
	return text
}

func retryCapability(intent model.Intent) model.Capability {
	if intent.IsDirect() || len(intent.Capabilities) == 0 {
		return model.CapabilityGeneral
	}
	return intent.Capabilities[0]
}
