package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/sparxrahulpawar/tsxChat/internal/app"
)

// withTimeout bounds the request context by h.requestTimeout. A handler
// that runs past the deadline without writing anything gets a 504 error
// envelope.
func (h *Handler) withTimeout(next http.Handler) http.Handler {
	if h.requestTimeout <= 0 {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
		defer cancel()

		rw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r.WithContext(ctx))

		if !rw.wroteHeader && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			writeErrorMessage(rw, http.StatusGatewayTimeout, app.MsgRequestTimeout)
		}
	})
}
