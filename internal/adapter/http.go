package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/sparxrahulpawar/tsxChat/internal/config"
	"github.com/sparxrahulpawar/tsxChat/internal/logger"
	"github.com/sparxrahulpawar/tsxChat/internal/utils"
	"github.com/sparxrahulpawar/tsxChat/models"
)

type httpAPIClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIClient constructs the resty implementation of [APIClient]
// against cfg.ServerURL. A URL without a scheme is taken as http.
//
// Returns [ErrInvalidBaseURL] if the URL is empty or has no host.
func NewHTTPAPIClient(cfg config.ClientConfig, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	return &httpAPIClient{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAPIClient) Signup(ctx context.Context, req models.SignupRequest) (models.AuthResult, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/api/auth/sign-up")
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("signup request: %w", err)
	}

	result, err := decodeData[models.AuthResult](resp)
	if err != nil {
		return models.AuthResult{}, err
	}

	h.SetToken(result.Token)
	h.logger.Debug().Str("user_id", result.User.ID).Msg("token stored")
	return result, nil
}

func (h *httpAPIClient) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("login request: %w", err)
	}

	result, err := decodeData[models.AuthResult](resp)
	if err != nil {
		return models.AuthResult{}, err
	}

	h.SetToken(result.Token)
	h.logger.Debug().Str("user_id", result.User.ID).Msg("token stored")
	return result, nil
}

func (h *httpAPIClient) Me(ctx context.Context) (models.User, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.User{}, err
	}

	resp, err := req.Get("/api/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}

	return decodeData[models.User](resp)
}

// Logout clears the stored token once the server has revoked the session.
// A 400 means the session was already gone; the token is cleared as well.
func (h *httpAPIClient) Logout(ctx context.Context) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	err = mapHTTPError(resp)
	if err == nil || resp.StatusCode() == http.StatusBadRequest {
		h.SetToken("")
	}
	return err
}

func (h *httpAPIClient) OnboardingStatus(ctx context.Context) (models.Onboarding, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Onboarding{}, err
	}

	resp, err := req.Get("/api/onboarding/status")
	if err != nil {
		return models.Onboarding{}, fmt.Errorf("onboarding status request: %w", err)
	}

	return decodeData[models.Onboarding](resp)
}

func (h *httpAPIClient) UpdateOnboardingStep(ctx context.Context, stepReq models.OnboardingStepRequest) (models.Onboarding, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Onboarding{}, err
	}

	resp, err := req.SetBody(stepReq).Patch("/api/onboarding/step")
	if err != nil {
		return models.Onboarding{}, fmt.Errorf("onboarding step request: %w", err)
	}

	return decodeData[models.Onboarding](resp)
}

func (h *httpAPIClient) CompleteOnboarding(ctx context.Context) (models.Onboarding, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Onboarding{}, err
	}

	resp, err := req.Post("/api/onboarding/complete")
	if err != nil {
		return models.Onboarding{}, fmt.Errorf("onboarding complete request: %w", err)
	}

	return decodeData[models.Onboarding](resp)
}

func (h *httpAPIClient) ResetOnboarding(ctx context.Context) (models.Onboarding, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Onboarding{}, err
	}

	resp, err := req.Post("/api/onboarding/reset")
	if err != nil {
		return models.Onboarding{}, fmt.Errorf("onboarding reset request: %w", err)
	}

	return decodeData[models.Onboarding](resp)
}

func (h *httpAPIClient) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpAPIClient) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}

// decodeData maps non-2xx responses to errors and unwraps the data field of
// a {message, data} envelope otherwise.
func decodeData[T any](resp *resty.Response) (T, error) {
	var envelope struct {
		Message string `json:"message"`
		Data    T      `json:"data"`
	}

	if err := mapHTTPError(resp); err != nil {
		return envelope.Data, err
	}

	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return envelope.Data, fmt.Errorf("%w: %w", ErrUnexpectedFormat, err)
	}

	return envelope.Data, nil
}
