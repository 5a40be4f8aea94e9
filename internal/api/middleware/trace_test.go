package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/keysfinder-api/internal/api/shared"
	"github.com/phrazzld/keysfinder-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceMiddleware(t *testing.T) {
	t.Parallel()

	const inbound = "3f0b6c1e-8f5c-4d7a-9a55-2c1b7f0e4a10"

	tests := []struct {
		name          string
		header        string
		expectInbound bool
	}{
		{name: "generates id when absent", header: ""},
		{name: "reuses valid inbound id", header: inbound, expectInbound: true},
		{name: "replaces malformed inbound id", header: "not-a-uuid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := &logger.TestLogBuffer{}
			base := logger.New(buf, slog.LevelDebug)

			var ctxTraceID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxTraceID = shared.GetTraceID(r.Context())
				logger.FromContext(r.Context()).Info("inside handler")
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/random", nil)
			if tt.header != "" {
				req.Header.Set(shared.TraceIDHeader, tt.header)
			}
			rr := httptest.NewRecorder()

			NewTraceMiddleware(base)(next).ServeHTTP(rr, req)

			headerID := rr.Header().Get(shared.TraceIDHeader)
			require.True(t, shared.IsValidTraceID(headerID))
			assert.Equal(t, headerID, ctxTraceID)
			if tt.expectInbound {
				assert.Equal(t, inbound, headerID)
			} else {
				assert.NotEqual(t, tt.header, headerID)
			}

			entries, err := buf.Entries()
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, headerID, entries[0]["trace_id"])
		})
	}
}
