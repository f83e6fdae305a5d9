package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sparxrahulpawar/tsxChat/internal/app"
	"github.com/sparxrahulpawar/tsxChat/internal/logger"
	"github.com/sparxrahulpawar/tsxChat/internal/service"
	"github.com/sparxrahulpawar/tsxChat/internal/utils"
	"github.com/sparxrahulpawar/tsxChat/internal/validators"
	"github.com/sparxrahulpawar/tsxChat/models"
)

// errorStatus binds a sentinel error to the HTTP status and the message
// written for it.
type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatusMap is matched in order, so wrapped validation causes come
// before the service errors that wrap them.
var errorStatusMap = []errorStatus{
	{validators.ErrInvalidSignupRequest, http.StatusBadRequest, app.MsgAllFieldsRequired},
	{validators.ErrInvalidLoginRequest, http.StatusBadRequest, app.MsgEmailPasswordRequired},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},

	// A taken email is reported as 400, the way clients already expect it.
	{service.ErrEmailTaken, http.StatusBadRequest, app.MsgUserAlreadyExists},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidEmailPassword},
	{service.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
	{service.ErrLogoutSessionNotFound, http.StatusBadRequest, app.MsgInvalidExpiredSession},

	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgNotLoggedIn},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrSessionInvalid, http.StatusUnauthorized, app.MsgSessionInvalid},
	{service.ErrUserNoLongerExists, http.StatusUnauthorized, app.MsgUserNoLongerExists},

	{service.ErrStepRequired, http.StatusBadRequest, app.MsgStepRequired},
	{service.ErrInvalidStep, http.StatusBadRequest, app.MsgInvalidStep},
	{service.ErrOnboardingNotFound, http.StatusNotFound, app.MsgOnboardingNotFound},
	{service.ErrOnboardingStepsIncomplete, http.StatusBadRequest, app.MsgOnboardingStepsIncomplete},

	{context.DeadlineExceeded, http.StatusGatewayTimeout, app.MsgRequestTimeout},
}

func statusFromError(err error) (int, string) {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError maps err to its status and writes the error envelope.
// Server errors are logged with the full cause; the client only ever sees
// the generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	writeErrorMessage(w, status, message)
}

// writeErrorMessage writes {status, message} with status "fail" for 4xx and
// "error" for 5xx codes.
func writeErrorMessage(w http.ResponseWriter, statusCode int, message string) {
	status := models.StatusFail
	if statusCode >= http.StatusInternalServerError {
		status = models.StatusError
	}

	utils.WriteJSON(w, models.ErrorResponse{Status: status, Message: message}, statusCode)
}

func writeNotFound(w http.ResponseWriter, r *http.Request) {
	writeErrorMessage(w, http.StatusNotFound, fmt.Sprintf(app.MsgRouteNotFound, r.URL.RequestURI()))
}
