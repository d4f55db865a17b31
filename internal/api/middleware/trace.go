package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/coursedir-api/internal/api/shared"
	"github.com/phrazzld/coursedir-api/internal/platform/logger"
)

// TraceMiddleware adds a trace ID and a request-scoped logger to the request
// context. An incoming X-Trace-ID header is honoured when it holds a valid
// UUID. The trace ID is echoed back in the response header.
//
// This middleware should be applied early in the middleware chain to ensure
// that all subsequent handlers have access to the trace ID.
func TraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceIDFrom(r.Context(), r.Header.Get(shared.TraceIDHeader))
			w.Header().Set(shared.TraceIDHeader, shared.GetTraceID(ctx))

			// The context handler attaches trace_id to every record.
			log := base.With(
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			ctx = logger.WithLogger(ctx, log)

			log.DebugContext(ctx, "request started",
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
