package service

import (
	"context"
	"fmt"

	"github.com/sparxrahulpawar/tsxChat/internal/validators"
	"github.com/sparxrahulpawar/tsxChat/models"
)

// AuthValidationService checks account payloads before handing them to the
// wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewAuthValidator(),
	}
}

func (v *AuthValidationService) Signup(ctx context.Context, req models.SignupRequest) (models.AuthResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Signup(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) GetCurrentUser(ctx context.Context, userID string) (models.User, error) {
	return v.inner.GetCurrentUser(ctx, userID)
}

func (v *AuthValidationService) Logout(ctx context.Context, token string) error {
	return v.inner.Logout(ctx, token)
}

func (v *AuthValidationService) Authenticate(ctx context.Context, token string) (models.Identity, error) {
	return v.inner.Authenticate(ctx, token)
}

func (v *AuthValidationService) Wrap(wrapper AuthService) AuthService {
	v.inner = wrapper
	return v
}
