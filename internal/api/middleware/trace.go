package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/keysfinder-api/internal/api/shared"
	"github.com/phrazzld/keysfinder-api/internal/platform/logger"
)

// NewTraceMiddleware returns middleware that assigns every request a trace ID.
// A well-formed inbound X-Trace-ID is reused, otherwise a new one is
// generated. The ID is echoed in the response header and a logger carrying
// it is stored in the request context.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get(shared.TraceIDHeader)
			if !shared.IsValidTraceID(traceID) {
				traceID = shared.NewTraceID()
			}

			ctx := shared.WithTraceID(r.Context(), traceID)
			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			w.Header().Set(shared.TraceIDHeader, traceID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
