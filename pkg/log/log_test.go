package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"DEBUG":   zapcore.DebugLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}

func TestRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", RequestID(ctx))
	assert.Equal(t, "", RequestID(context.Background()))
}

func TestInit_DoesNotPanic(t *testing.T) {
	for _, enc := range []string{EncodingJSON, EncodingConsole} {
		l := Init(ZapConfig{Level: "error", Mode: ModeProduction, Encoding: enc})
		assert.NotNil(t, l)
		l.Debugf(WithRequestID(context.Background(), "x"), "hidden %d", 1)
	}
	NewNop().Info(context.Background(), "discarded")
}
