// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/sparxrahulpawar/tsxChat/internal/app"
	"github.com/sparxrahulpawar/tsxChat/internal/logger"
	"github.com/sparxrahulpawar/tsxChat/internal/utils"
	"github.com/sparxrahulpawar/tsxChat/models"
)

// Onboarding routes sit behind h.auth, so the identity is always present.

func (h *Handler) getOnboardingStatus(w http.ResponseWriter, r *http.Request) {
	identity, _ := utils.IdentityFromContext(r.Context())

	onboarding, err := h.services.OnboardingService.GetStatus(r.Context(), identity.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Message: app.MsgOnboardingStatus, Data: onboarding}, http.StatusOK)
}

func (h *Handler) updateOnboardingStep(w http.ResponseWriter, r *http.Request) {
	identity, _ := utils.IdentityFromContext(r.Context())

	var req models.OnboardingStepRequest
	if err := decodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		writeErrorMessage(w, http.StatusBadRequest, app.MsgInvalidJSON)
		return
	}

	onboarding, err := h.services.OnboardingService.UpdateStep(r.Context(), identity.ID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Message: app.MsgOnboardingStep, Data: onboarding}, http.StatusOK)
}

func (h *Handler) completeOnboarding(w http.ResponseWriter, r *http.Request) {
	identity, _ := utils.IdentityFromContext(r.Context())

	onboarding, err := h.services.OnboardingService.Complete(r.Context(), identity.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Message: app.MsgOnboardingDone, Data: onboarding}, http.StatusOK)
}

func (h *Handler) resetOnboarding(w http.ResponseWriter, r *http.Request) {
	identity, _ := utils.IdentityFromContext(r.Context())

	onboarding, err := h.services.OnboardingService.Reset(r.Context(), identity.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Message: app.MsgOnboardingReset, Data: onboarding}, http.StatusOK)
}
