package orchestrator

import "filmbuff-ai/internal/model"

// Role describes one specialist: its persona and the tools it may call.
type Role struct {
	Capability model.Capability
	Title      string
	Goal       string
	Backstory  string
	Tools      []string
}

// Option tunes a Specialist.
type Option func(*Specialist)

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) Option {
	return func(s *Specialist) { s.temperature = t }
}

// WithMaxSteps bounds the Reason/Act/Observe loop.
func WithMaxSteps(n int) Option {
	return func(s *Specialist) {
		if n > 0 {
			s.maxSteps = n
		}
	}
}
