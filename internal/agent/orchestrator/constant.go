package orchestrator

// Log prefixes
const (
	LogPrefixInvoke = "internal.agent.orchestrator.Invoke"
)

// Configuration
const (
	MaxAgentSteps = 5
)

// Error messages
const (
	ErrMsgAgentLLMError    = "agent %s LLM error at step %d"
	ErrMsgEmptyLLMResponse = "empty LLM response"
	ErrMsgToolNotFound     = "tool not found"
)

// Task framing, sent as the user turn.
const (
	TaskTemplate = `User query: "%s"

Instructions: %s

Use your tools to look up real data before answering. Provide a concise, informative and well-formatted answer.
Include TMDb links where available.`
)

// System prompt skeleton: role, goal, backstory.
const (
	SystemPromptTemplate = `You are the %s.
Goal: %s
%s

Only state facts you obtained from your tools. If a lookup fails, say so briefly and answer with what you have.`
)
