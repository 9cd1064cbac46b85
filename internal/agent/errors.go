package agent

import (
	"errors"
	"fmt"

	"filmbuff-ai/internal/model"
)

var (
	// ErrUnknownCapability is returned when no handler is bound to a capability.
	ErrUnknownCapability = errors.New("agent: unknown capability")
	// ErrInvalidArgument marks tool calls with missing or malformed parameters.
	ErrInvalidArgument = errors.New("agent: invalid tool argument")
)

// UnknownCapabilityError names the capability that has no handler.
type UnknownCapabilityError struct {
	Capability model.Capability
}

func (e *UnknownCapabilityError) Error() string {
	return fmt.Sprintf("agent: no handler for capability %q", e.Capability)
}

func (e *UnknownCapabilityError) Is(target error) bool {
	return target == ErrUnknownCapability
}
