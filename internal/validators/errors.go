package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrInvalidSignupRequest     = errors.New("invalid signup request")
	ErrInvalidLoginRequest      = errors.New("invalid login request")
	ErrInvalidProfileData       = errors.New("invalid profile data")
	ErrInvalidPreferences       = errors.New("invalid preferences")
	ErrInvalidOnboardingStep    = errors.New("invalid onboarding step")
	ErrInvalidOnboardingPayload = errors.New("invalid onboarding step payload")
)
