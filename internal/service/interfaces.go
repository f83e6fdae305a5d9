package service

import (
	"context"

	"github.com/sparxrahulpawar/tsxChat/models"
)

type AuthService interface {
	// Signup registers a new account, opens its first session and returns
	// the user together with the session token.
	Signup(ctx context.Context, req models.SignupRequest) (models.AuthResult, error)
	// Login verifies credentials and opens a new session. Existing sessions
	// of the user are left untouched.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error)
	GetCurrentUser(ctx context.Context, userID string) (models.User, error)
	// Logout deletes the session holding exactly token.
	Logout(ctx context.Context, token string) error
	// Authenticate resolves a bearer token to the identity of a live session.
	Authenticate(ctx context.Context, token string) (models.Identity, error)
}

type TokenService interface {
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type OnboardingService interface {
	// GetStatus returns the user's onboarding record, creating the default
	// one on first access.
	GetStatus(ctx context.Context, userID string) (models.Onboarding, error)
	UpdateStep(ctx context.Context, userID string, req models.OnboardingStepRequest) (models.Onboarding, error)
	Complete(ctx context.Context, userID string) (models.Onboarding, error)
	Reset(ctx context.Context, userID string) (models.Onboarding, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// logging or validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}

// OnboardingServiceWrapper defines middleware composition for OnboardingService.
type OnboardingServiceWrapper interface {
	Wrap(OnboardingService) OnboardingService
}
