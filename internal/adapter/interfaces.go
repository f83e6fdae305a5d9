// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the tsxChat REST API.
//
// The primary abstraction is [APIClient], which hides request building,
// bearer header management and response envelopes from callers. The package
// ships an HTTP implementation built on resty ([NewHTTPAPIClient]).
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel errors in
// errors.go so that callers can use [errors.Is] (e.g. [ErrUnauthorized] for
// 401, [ErrTooManyRequests] for 429). The server's message is kept in the
// error text.
package adapter

import (
	"context"

	"github.com/sparxrahulpawar/tsxChat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_client_mock.go -package=mock

// APIClient defines communication with the tsxChat server.
type APIClient interface {
	// SetToken stores the bearer token attached to every authenticated
	// request.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Signup creates an account. On success the returned token is stored
	// via SetToken.
	Signup(ctx context.Context, req models.SignupRequest) (models.AuthResult, error)

	// Login opens a new session. On success the returned token is stored
	// via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error)

	// Me returns the account the stored token belongs to.
	Me(ctx context.Context) (models.User, error)

	// Logout revokes the session of the stored token and clears it.
	Logout(ctx context.Context) error

	// OnboardingStatus returns the onboarding record, creating it on the
	// server if the user has none yet.
	OnboardingStatus(ctx context.Context) (models.Onboarding, error)

	// UpdateOnboardingStep marks a step done and applies its data.
	UpdateOnboardingStep(ctx context.Context, req models.OnboardingStepRequest) (models.Onboarding, error)

	// CompleteOnboarding finishes the flow once every step is done.
	CompleteOnboarding(ctx context.Context) (models.Onboarding, error)

	// ResetOnboarding clears step progress.
	ResetOnboarding(ctx context.Context) (models.Onboarding, error)

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
