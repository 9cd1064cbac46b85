package tools

import (
	"fmt"
	"strconv"
	"strings"

	"filmbuff-ai/internal/agent"
)

// Models send numbers as float64 (JSON) and occasionally as strings.

func stringParam(params map[string]interface{}, key string) string {
	switch v := params[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func requiredString(params map[string]interface{}, key string) (string, error) {
	v := stringParam(params, key)
	if v == "" {
		return "", fmt.Errorf("%w: %s is required", agent.ErrInvalidArgument, key)
	}
	return v, nil
}

func intParam(params map[string]interface{}, key string) int {
	switch v := params[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err == nil {
			return n
		}
	}
	return 0
}

func requiredInt(params map[string]interface{}, key string) (int, error) {
	v := intParam(params, key)
	if v <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", agent.ErrInvalidArgument, key)
	}
	return v, nil
}

func floatParam(params map[string]interface{}, key string, def float64) float64 {
	switch v := params[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err == nil {
			return f
		}
	}
	return def
}

// maxResults reads max_results, clamped to [1, maxMaxResults].
func maxResults(params map[string]interface{}, def int) int {
	n := intParam(params, "max_results")
	if n <= 0 {
		return def
	}
	if n > maxMaxResults {
		return maxMaxResults
	}
	return n
}

func schema(props map[string]interface{}, required ...string) map[string]interface{} {
	s := map[string]interface{}{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

func prop(typ, desc string) map[string]interface{} {
	return map[string]interface{}{"type": typ, "description": desc}
}

func enumProp(desc string, values ...string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": desc, "enum": values}
}
