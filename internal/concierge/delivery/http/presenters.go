package http

import (
	"time"

	"filmbuff-ai/internal/concierge"
	"filmbuff-ai/internal/model"
	"filmbuff-ai/internal/querycache"
	"filmbuff-ai/pkg/response"
)

// --- Request DTOs ---

type askReq struct {
	Query string `json:"query" binding:"required,max=1000"`
}

func (r askReq) toInput() concierge.AskInput {
	return concierge.AskInput{Query: r.Query}
}

// --- Response DTOs ---

type intentResp struct {
	Category     string   `json:"category"`
	Capabilities []string `json:"capabilities"`
}

func newIntentResp(in model.Intent) *intentResp {
	if in.Category == "" {
		return nil
	}
	caps := make([]string, len(in.Capabilities))
	for i, c := range in.Capabilities {
		caps[i] = string(c)
	}
	return &intentResp{Category: string(in.Category), Capabilities: caps}
}

type askResp struct {
	Answer    string      `json:"answer"`
	Cached    bool        `json:"cached"`
	Retried   bool        `json:"retried"`
	Failed    bool        `json:"failed"`
	Intent    *intentResp `json:"intent,omitempty"`
	RequestID string      `json:"request_id"`
}

func (h *handler) newAskResp(out concierge.AskOutput) askResp {
	return askResp{
		Answer:    out.Answer,
		Cached:    out.Cached,
		Retried:   out.Retried,
		Failed:    out.Failed,
		Intent:    newIntentResp(out.Intent),
		RequestID: out.RequestID,
	}
}

type cacheStatsResp struct {
	Entries       int                `json:"entries"`
	MaxSize       int                `json:"max_size"`
	ExpirySeconds int64              `json:"expiry_seconds"`
	Hits          int64              `json:"hits"`
	Misses        int64              `json:"misses"`
	Evictions     int64              `json:"evictions"`
	LastSaved     *response.DateTime `json:"last_saved,omitempty"`
	Backend       string             `json:"backend"`
}

func (h *handler) newCacheStatsResp(st querycache.Stats) cacheStatsResp {
	resp := cacheStatsResp{
		Entries:       st.Entries,
		MaxSize:       st.MaxSize,
		ExpirySeconds: int64(st.Expiry / time.Second),
		Hits:          st.Hits,
		Misses:        st.Misses,
		Evictions:     st.Evictions,
		Backend:       st.Backend,
	}
	if !st.LastSaved.IsZero() {
		saved := response.DateTime(st.LastSaved)
		resp.LastSaved = &saved
	}
	return resp
}

type purgeResp struct {
	Removed int `json:"removed"`
}

type limitResp struct {
	MaxCalls              int   `json:"max_calls"`
	PeriodSeconds         int64 `json:"period_seconds"`
	Remaining             int   `json:"remaining"`
	SecondsUntilAvailable int   `json:"seconds_until_available"`
}

func (h *handler) newLimitResp(st concierge.LimitStatus) limitResp {
	return limitResp{
		MaxCalls:              st.MaxCalls,
		PeriodSeconds:         int64(st.Period / time.Second),
		Remaining:             st.Remaining,
		SecondsUntilAvailable: st.SecondsUntilAvailable,
	}
}
