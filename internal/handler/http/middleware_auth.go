package http

import (
	"net/http"

	"github.com/sparxrahulpawar/tsxChat/internal/logger"
	"github.com/sparxrahulpawar/tsxChat/internal/utils"
)

// auth is an HTTP middleware that enforces session-backed bearer
// authentication.
//
// It extracts the token from the "Authorization: Bearer <token>" header and
// resolves it via [service.AuthService.Authenticate]. On success the
// identity and the raw token are stored in the request context
// ([utils.WithIdentity], [utils.WithToken]) before delegating to the next
// handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The header is absent or not a bearer credential.
//   - The token signature or expiry does not verify.
//   - No unexpired session holds the token (logged out or swept).
//   - The token subject no longer exists.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Msg("no bearer token")
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		identity, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx = utils.WithIdentity(ctx, identity)
		ctx = utils.WithToken(ctx, tokenString)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
