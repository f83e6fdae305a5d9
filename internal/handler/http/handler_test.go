package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sparxrahulpawar/tsxChat/internal/config"
	"github.com/sparxrahulpawar/tsxChat/internal/logger"
	"github.com/sparxrahulpawar/tsxChat/internal/service"
	"github.com/sparxrahulpawar/tsxChat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signupFn         func(ctx context.Context, req models.SignupRequest) (models.AuthResult, error)
	loginFn          func(ctx context.Context, req models.LoginRequest) (models.AuthResult, error)
	getCurrentUserFn func(ctx context.Context, userID string) (models.User, error)
	logoutFn         func(ctx context.Context, token string) error
	authenticateFn   func(ctx context.Context, token string) (models.Identity, error)
}

func (m *mockAuthService) Signup(ctx context.Context, req models.SignupRequest) (models.AuthResult, error) {
	return m.signupFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) GetCurrentUser(ctx context.Context, userID string) (models.User, error) {
	return m.getCurrentUserFn(ctx, userID)
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	return m.logoutFn(ctx, token)
}

func (m *mockAuthService) Authenticate(ctx context.Context, token string) (models.Identity, error) {
	return m.authenticateFn(ctx, token)
}

// mockOnboardingService implements service.OnboardingService for unit tests.
type mockOnboardingService struct {
	getStatusFn  func(ctx context.Context, userID string) (models.Onboarding, error)
	updateStepFn func(ctx context.Context, userID string, req models.OnboardingStepRequest) (models.Onboarding, error)
	completeFn   func(ctx context.Context, userID string) (models.Onboarding, error)
	resetFn      func(ctx context.Context, userID string) (models.Onboarding, error)
}

func (m *mockOnboardingService) GetStatus(ctx context.Context, userID string) (models.Onboarding, error) {
	return m.getStatusFn(ctx, userID)
}

func (m *mockOnboardingService) UpdateStep(ctx context.Context, userID string, req models.OnboardingStepRequest) (models.Onboarding, error) {
	return m.updateStepFn(ctx, userID, req)
}

func (m *mockOnboardingService) Complete(ctx context.Context, userID string) (models.Onboarding, error) {
	return m.completeFn(ctx, userID)
}

func (m *mockOnboardingService) Reset(ctx context.Context, userID string) (models.Onboarding, error) {
	return m.resetFn(ctx, userID)
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo(m.version, "", "")
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// testServerConfig disables rate limiting and the request timeout.
var testServerConfig = config.Server{}

func newHandlerWithServices(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}
	return NewHandler(svcs, testServerConfig, logger.Nop())
}

// decodeError reads the {status, message} envelope from rec.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return body
}

// decodeResponse reads the {message, data} envelope from rec, decoding data
// into dst when dst is not nil.
func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder, dst any) string {
	t.Helper()
	var body struct {
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	if dst != nil {
		require.NoError(t, json.Unmarshal(body.Data, dst))
	}
	return body.Message
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(&service.Services{}, config.Server{}, logger.Nop())

	require.NotNil(t, h)
}

func TestNewHandler_StoresServicesAndLogger(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()
	h := NewHandler(svc, config.Server{}, log)

	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
}

func TestNewHandler_RateLimiterFromConfig(t *testing.T) {
	h := NewHandler(&service.Services{}, config.Server{RateLimitRequests: 5, RateLimitWindow: time.Minute}, logger.Nop())
	require.NotNil(t, h.limiter)
	assert.Equal(t, 5, h.limiter.requests)

	h = NewHandler(&service.Services{}, config.Server{}, logger.Nop())
	assert.Nil(t, h.limiter)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, config.Server{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, config.Server{}, logger.Nop())

	assert.NotSame(t, h1, h2)
}
