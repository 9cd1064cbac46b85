package openai

import "time"

const (
	// DefaultModel is the default chat model
	DefaultModel = "gpt-4o-mini"

	// DefaultBaseURL is the default API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	maxErrorBody = 4 << 10
)

// Base URLs of OpenAI-compatible vendors.
const (
	DeepSeekBaseURL = "https://api.deepseek.com/v1"
	QwenBaseURL     = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
)
