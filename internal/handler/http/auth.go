package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sparxrahulpawar/tsxChat/internal/app"
	"github.com/sparxrahulpawar/tsxChat/internal/logger"
	"github.com/sparxrahulpawar/tsxChat/internal/utils"
	"github.com/sparxrahulpawar/tsxChat/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeErrorMessage(w, http.StatusBadRequest, app.MsgInvalidJSON)
		return
	}

	result, err := h.services.AuthService.Signup(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", result.User.ID).Msg("user signed up")
	utils.WriteJSON(w, models.Response{Message: app.MsgUserCreated, Data: result}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeErrorMessage(w, http.StatusBadRequest, app.MsgInvalidJSON)
		return
	}

	result, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", result.User.ID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.Response{Message: app.MsgLoginSuccessful, Data: result}, http.StatusOK)
}

// logout is reachable without the auth middleware: it only needs the token
// to find the session, so an already expired token can still be revoked.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("logout without token")
		writeErrorMessage(w, http.StatusBadRequest, app.MsgTokenRequiredLogout)
		return
	}

	if err = h.services.AuthService.Logout(r.Context(), token); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Message: app.MsgLoggedOut}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.IdentityFromContext(r.Context())
	if !ok {
		writeErrorMessage(w, http.StatusUnauthorized, app.MsgNotLoggedIn)
		return
	}

	user, err := h.services.AuthService.GetCurrentUser(r.Context(), identity.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Message: app.MsgUserRetrieved, Data: user}, http.StatusOK)
}

// decodeJSON decodes the request body into dst. An empty body leaves dst
// zero-valued so that field validation reports what is missing.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
