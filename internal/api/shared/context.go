package shared

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"log/slog"
	"time"
)

// ContextKey is the type for request-context values owned by this package.
type ContextKey string

const (
	// TraceIDKey carries the per-request trace ID through the context.
	TraceIDKey ContextKey = "traceID"

	// TraceIDLength is the trace ID size in bytes (32 hex characters).
	TraceIDLength = 16
)

// SetTraceID attaches a fresh trace ID to the context. Error responses
// and log lines for the same request carry this ID so they can be
// correlated.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID returns the context's trace ID, or "" when none was set.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// generateTraceID produces a random 32-character hex trace ID. A failed
// read from crypto/rand degrades to a time-derived ID rather than a
// constant one.
func generateTraceID() string {
	b := make([]byte, TraceIDLength)
	n, err := rand.Read(b)

	if err != nil || n != TraceIDLength {
		slog.Error("failed to generate secure random trace ID",
			"error", err,
			"bytes_read", n,
			"bytes_requested", TraceIDLength,
			"fallback", "time-based generation")
		return generateFallbackTraceID()
	}

	return hex.EncodeToString(b)
}

// generateFallbackTraceID assembles a trace ID from three separate time
// readings. Weaker than the random path but still unique enough to
// correlate a request's log lines.
func generateFallbackTraceID() string {
	fallbackID := make([]byte, TraceIDLength)

	binary.BigEndian.PutUint64(fallbackID[:8], uint64(time.Now().UnixNano()))
	binary.BigEndian.PutUint32(fallbackID[8:12], uint32(time.Now().Nanosecond()))
	binary.BigEndian.PutUint32(fallbackID[12:16], uint32(time.Now().Unix()))

	return hex.EncodeToString(fallbackID)
}
