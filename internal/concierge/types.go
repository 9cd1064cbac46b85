package concierge

import (
	"time"

	"filmbuff-ai/internal/model"
)

// AskInput is the input for Ask. The caller identity travels in model.Scope.
type AskInput struct {
	Query string
}

// AskOutput is the result of Ask.
type AskOutput struct {
	Answer    string
	Cached    bool
	Intent    model.Intent
	Retried   bool
	Failed    bool
	RequestID string
}

// LimitStatus is a read-only view of the query limiter.
type LimitStatus struct {
	MaxCalls              int
	Period                time.Duration
	Remaining             int
	SecondsUntilAvailable int
}

// Config bounds the pipeline. Zero values fall back to the defaults below.
type Config struct {
	MinResultLength      int
	InstructionMaxLength int
	SynthesisMaxLength   int
	// HandlerTimeout caps each capability invocation; 0 disables it.
	HandlerTimeout time.Duration
}

const (
	DefaultMinResultLength      = 50
	DefaultInstructionMaxLength = 300
	DefaultSynthesisMaxLength   = 2000
	DefaultHandlerTimeout       = 90 * time.Second
)

// DefaultConfig returns the pipeline defaults.
func DefaultConfig() Config {
	return Config{
		MinResultLength:      DefaultMinResultLength,
		InstructionMaxLength: DefaultInstructionMaxLength,
		SynthesisMaxLength:   DefaultSynthesisMaxLength,
		HandlerTimeout:       DefaultHandlerTimeout,
	}
}
