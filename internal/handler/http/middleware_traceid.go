package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	traceIDHeader = "X-Trace-ID"

	// maxTraceIDLength bounds client-supplied trace ids before they reach
	// the logs.
	maxTraceIDLength = 128
)

// withTraceID reuses the caller's X-Trace-ID when it is well formed and
// generates a UUID otherwise. The id is echoed in the response and attached
// to the request-scoped logger as "trace_id".
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if !validTraceID(traceID) {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '!' || id[i] > '~' {
			return false
		}
	}
	return true
}
