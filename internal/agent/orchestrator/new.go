package orchestrator

import (
	"fmt"

	"filmbuff-ai/internal/agent"
	"filmbuff-ai/pkg/llmprovider"
	pkgLog "filmbuff-ai/pkg/log"
)

// Specialist answers one capability by running a tool-using ReAct loop.
type Specialist struct {
	llm         llmprovider.Provider
	registry    *agent.ToolRegistry
	l           pkgLog.Logger
	role        Role
	system      string
	temperature float64
	maxSteps    int
}

// New creates a specialist restricted to the role's tools.
func New(llm llmprovider.Provider, registry *agent.ToolRegistry, l pkgLog.Logger, role Role, opts ...Option) *Specialist {
	s := &Specialist{
		llm:      llm,
		registry: registry.Subset(role.Tools...),
		l:        l,
		role:     role,
		system:   fmt.Sprintf(SystemPromptTemplate, role.Title, role.Goal, role.Backstory),
		maxSteps: MaxAgentSteps,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewRegistry builds a capability registry with one Specialist per built-in role.
func NewRegistry(llm llmprovider.Provider, tools *agent.ToolRegistry, l pkgLog.Logger, opts ...Option) *agent.Registry {
	reg := agent.NewRegistry()
	for _, role := range Roles() {
		reg.Register(role.Capability, New(llm, tools, l, role, opts...))
	}
	return reg
}

var _ agent.Handler = (*Specialist)(nil)
