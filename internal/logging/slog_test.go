package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return New(int(slog.LevelDebug), &buf), &buf
}

func TestSlogLogger_Levels_WriteExpectedOutput(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()

	tests := []struct {
		level string
		msg   string
		attr  string
	}{
		{"DEBUG", "dbg", "a=1"},
		{"INFO", "inf", "b=2"},
		{"WARN", "wrn", "c=3"},
		{"ERROR", "err", "d=4"},
	}

	for _, tc := range tests {
		assert.Contains(t, out, "level="+tc.level)
		assert.Contains(t, out, "msg="+tc.msg)
		assert.Contains(t, out, tc.attr)
	}
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	log, buf := newTestLogger(t)

	log.With("request_id", "abc", "email", "admin@example.com").Info(context.Background(), "hello", "k", "v")

	out := buf.String()
	for _, s := range []string{"level=INFO", "msg=hello", "request_id=abc", "email=admin@example.com", "k=v"} {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in output, got:\n%s", s, out)
		}
	}
}

func TestNew_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(int(slog.LevelInfo), &buf)

	log.Debug(context.Background(), "hidden")
	assert.Empty(t, buf.String())
}

func TestNewNop_DiscardsEverything(t *testing.T) {
	log := NewNop()
	assert.NotPanics(t, func() {
		log.Error(context.TODO(), "nothing", "k", "v")
		log.With("a", 1).Info(context.TODO(), "still nothing")
	})
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "***", Redact(""))
	assert.Equal(t, "***", Redact("short"))
	assert.Equal(t, "eyJhbGci***", Redact("eyJhbGciOiJIUzI1NiJ9.payload.sig"))
}

func TestNew_RedactsSensitiveAttributes(t *testing.T) {
	log, buf := newTestLogger(t)

	log.With("token", "eyJhbGciOiJIUzI1NiJ9.payload.sig").Info(context.Background(), "login",
		"password", "password123!", "email", "admin@example.com", "refresh_token", "short")

	out := buf.String()
	assert.Contains(t, out, "token=eyJhbGci***")
	assert.Contains(t, out, "password=password***")
	assert.Contains(t, out, "refresh_token=***")
	assert.Contains(t, out, "email=admin@example.com")
	assert.NotContains(t, out, "password123!")
}
