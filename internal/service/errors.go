package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrEmailTaken          = errors.New("user already exists")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrSessionInvalid          = errors.New("session is invalid or user has logged out")
	ErrUserNoLongerExists      = errors.New("user no longer exists")
	ErrUserNotFound            = errors.New("user not found")
	ErrLogoutSessionNotFound   = errors.New("invalid or expired session")

	ErrStepRequired              = errors.New("step is required")
	ErrInvalidStep               = errors.New("invalid step provided")
	ErrOnboardingNotFound        = errors.New("onboarding record not found")
	ErrOnboardingStepsIncomplete = errors.New("all onboarding steps must be completed before marking as complete")
)
