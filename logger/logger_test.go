package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		raw      string
		expected zapcore.Level
	}{
		{"", zapcore.InfoLevel},
		{"debug", zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{"nonsense", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, getLogLevel(tt.raw))
		})
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	l := New(zapcore.AddSync(&buf), zapcore.InfoLevel)

	l.Named("Generate").Info("file", zap.String("path", "person.proto"))
	l.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "protoc-gen-go-leo.Generate")
	assert.Contains(t, out, "person.proto")
	assert.NotContains(t, out, "hidden")
}
