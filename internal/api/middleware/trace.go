// Package middleware provides HTTP middleware for the API router.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/studykit/practicelog/internal/api/shared"
)

// TraceMiddleware stamps each request's context with a trace ID before
// any handler runs, so every log line and error response downstream can
// be tied back to the request. Mount it early in the chain.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())

		slog.With(slog.String("trace_id", shared.GetTraceID(ctx))).Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
