package http

import (
	"net/http"
	"time"

	"github.com/sparxrahulpawar/tsxChat/internal/logger"
)

// withLogging writes one access log entry per request. Responses with a
// status of 400 or more are logged at warn level together with their body.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		event := log.Info()
		if lw.statusCode() >= http.StatusBadRequest {
			event = log.Warn().Bytes("response", lw.body)
		}

		event.
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.statusCode()).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
