package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sparxrahulpawar/tsxChat/internal/service"
	"github.com/sparxrahulpawar/tsxChat/internal/utils"
	"github.com/sparxrahulpawar/tsxChat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTestIdentity(r *http.Request) *http.Request {
	return r.WithContext(utils.WithIdentity(r.Context(), models.Identity{ID: "u1"}))
}

func TestGetOnboardingStatus(t *testing.T) {
	svc := &mockOnboardingService{
		getStatusFn: func(_ context.Context, userID string) (models.Onboarding, error) {
			assert.Equal(t, "u1", userID)
			return models.NewOnboarding(userID), nil
		},
	}
	h := newHandlerWithServices(t, &service.Services{OnboardingService: svc})

	rec := httptest.NewRecorder()
	h.getOnboardingStatus(rec, withTestIdentity(httptest.NewRequest(http.MethodGet, "/api/onboarding/status", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Onboarding
	assert.Equal(t, "Onboarding status retrieved successfully", decodeResponse(t, rec, &got))
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, models.ThemeSystem, got.Preferences.Theme)
}

func TestUpdateOnboardingStep(t *testing.T) {
	svc := &mockOnboardingService{
		updateStepFn: func(_ context.Context, userID string, req models.OnboardingStepRequest) (models.Onboarding, error) {
			assert.Equal(t, "u1", userID)
			assert.Equal(t, models.StepProfile, req.Step)
			assert.JSONEq(t, `{"bio":"hello"}`, string(req.Data))

			o := models.NewOnboarding(userID)
			o.MarkStep(req.Step)
			return o, nil
		},
	}
	h := newHandlerWithServices(t, &service.Services{OnboardingService: svc})

	body := `{"step":"profile","data":{"bio":"hello"}}`
	rec := httptest.NewRecorder()
	h.updateOnboardingStep(rec, withTestIdentity(httptest.NewRequest(http.MethodPatch, "/api/onboarding/step", strings.NewReader(body))))

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Onboarding
	assert.Equal(t, "Onboarding step updated successfully", decodeResponse(t, rec, &got))
	assert.True(t, got.Steps.Profile)
}

func TestUpdateOnboardingStep_InvalidJSON(t *testing.T) {
	h := newHandlerWithServices(t, &service.Services{OnboardingService: &mockOnboardingService{}})

	rec := httptest.NewRecorder()
	h.updateOnboardingStep(rec, withTestIdentity(httptest.NewRequest(http.MethodPatch, "/api/onboarding/step", strings.NewReader("{"))))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid JSON was passed", decodeError(t, rec).Message)
}

func TestOnboardingHandlers_Errors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "step required", err: service.ErrStepRequired, wantStatus: http.StatusBadRequest, wantMessage: "Step is required"},
		{name: "invalid step", err: service.ErrInvalidStep, wantStatus: http.StatusBadRequest, wantMessage: "Invalid step provided"},
		{name: "not found", err: service.ErrOnboardingNotFound, wantStatus: http.StatusNotFound, wantMessage: "Onboarding record not found"},
		{
			name:        "incomplete",
			err:         service.ErrOnboardingStepsIncomplete,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "All onboarding steps must be completed before marking as complete",
		},
		{name: "internal", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantMessage: "Something went wrong"},
	}

	fail := func(err error) func(context.Context, string) (models.Onboarding, error) {
		return func(context.Context, string) (models.Onboarding, error) { return models.Onboarding{}, err }
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockOnboardingService{
				getStatusFn: fail(tt.err),
				completeFn:  fail(tt.err),
				resetFn:     fail(tt.err),
				updateStepFn: func(context.Context, string, models.OnboardingStepRequest) (models.Onboarding, error) {
					return models.Onboarding{}, tt.err
				},
			}
			h := newHandlerWithServices(t, &service.Services{OnboardingService: svc})

			handlers := map[string]http.HandlerFunc{
				"status":   h.getOnboardingStatus,
				"step":     h.updateOnboardingStep,
				"complete": h.completeOnboarding,
				"reset":    h.resetOnboarding,
			}
			for name, handle := range handlers {
				rec := httptest.NewRecorder()
				handle(rec, withTestIdentity(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"step":"welcome"}`))))

				assert.Equal(t, tt.wantStatus, rec.Code, name)
				var body models.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), name)
				assert.Equal(t, tt.wantMessage, body.Message, name)
			}
		})
	}
}

func TestCompleteAndResetOnboarding(t *testing.T) {
	svc := &mockOnboardingService{
		completeFn: func(_ context.Context, userID string) (models.Onboarding, error) {
			o := models.NewOnboarding(userID)
			o.IsCompleted = true
			return o, nil
		},
		resetFn: func(_ context.Context, userID string) (models.Onboarding, error) {
			return models.NewOnboarding(userID), nil
		},
	}
	h := newHandlerWithServices(t, &service.Services{OnboardingService: svc})

	rec := httptest.NewRecorder()
	h.completeOnboarding(rec, withTestIdentity(httptest.NewRequest(http.MethodPost, "/api/onboarding/complete", nil)))
	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Onboarding
	assert.Equal(t, "Onboarding completed successfully", decodeResponse(t, rec, &got))
	assert.True(t, got.IsCompleted)

	rec = httptest.NewRecorder()
	h.resetOnboarding(rec, withTestIdentity(httptest.NewRequest(http.MethodPost, "/api/onboarding/reset", nil)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Onboarding reset successfully", decodeResponse(t, rec, &got))
	assert.False(t, got.IsCompleted)
}
