// Package logging defines the structured-logging interface used across
// hradmin. The default implementation wraps log/slog.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "session refreshed", "email", email, "expires", exp)
type Logger interface {
	// Debug logs request-level detail, disabled at the default level.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

// Redact shortens a secret (token, ciphertext) to a prefix that is safe to
// put into log lines.
func Redact(secret string) string {
	const keep = 8
	if len(secret) <= keep {
		return "***"
	}
	return secret[:keep] + "***"
}
