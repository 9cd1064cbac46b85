package agent

import (
	"context"

	"filmbuff-ai/internal/model"
)

// Handler performs the work behind one capability.
// It receives free-text instructions plus the user's original query and returns text.
type Handler interface {
	Invoke(ctx context.Context, instructions, query string) (string, error)
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(ctx context.Context, instructions, query string) (string, error)

// Invoke calls f.
func (f HandlerFunc) Invoke(ctx context.Context, instructions, query string) (string, error) {
	return f(ctx, instructions, query)
}

// Registry maps capabilities to their handlers.
type Registry struct {
	handlers map[model.Capability]Handler
}

// NewRegistry creates an empty capability registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[model.Capability]Handler)}
}

// Register binds h to capability c, replacing any previous binding.
func (r *Registry) Register(c model.Capability, h Handler) {
	r.handlers[c] = h
}

// Handler returns the handler bound to c.
func (r *Registry) Handler(c model.Capability) (Handler, error) {
	h, ok := r.handlers[c]
	if !ok {
		return nil, &UnknownCapabilityError{Capability: c}
	}
	return h, nil
}
