package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewText(&buf, slog.LevelInfo).With("component", "test")

	ctx := context.Background()
	l.Debug(ctx, "hidden")
	l.Info(ctx, "key generated", "ski", "abcd", Redacted("secret"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "key generated")
	assert.Contains(t, out, "component=test")
	assert.Contains(t, out, "secret="+Placeholder())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(" WARN "))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error(context.Background(), "dropped")
	assert.NotNil(t, New(nil))
}
