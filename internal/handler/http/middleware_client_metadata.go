package http

import (
	"net"
	"net/http"

	"github.com/sparxrahulpawar/tsxChat/internal/utils"
	"github.com/sparxrahulpawar/tsxChat/models"
)

// withClientMetadata records the client address and user agent in the
// request context; new sessions are stamped with them. It must run after
// chi's RealIP so that proxy headers are honoured.
func (h *Handler) withClientMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := utils.WithClientMetadata(r.Context(), models.ClientMetadata{
			IPAddress: clientIP(r),
			UserAgent: r.UserAgent(),
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// clientIP returns the host part of r.RemoteAddr, or RemoteAddr itself when
// it carries no port (as after RealIP).
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
