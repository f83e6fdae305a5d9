package validators

import (
	"context"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/sparxrahulpawar/tsxChat/models"
)

// Length limits applied to account fields.
const (
	MaxFullnameLength = 100
	MaxEmailLength    = 254
	MaxPasswordLength = 72
)

// AuthValidator validates the account payloads: [models.SignupRequest] and
// [models.LoginRequest]. Values are checked after trimming surrounding
// whitespace so that a blank fullname or email counts as missing.
type AuthValidator struct {
}

// NewAuthValidator constructs a new AuthValidator and returns it as the
// Validator interface.
func NewAuthValidator() Validator {
	return &AuthValidator{}
}

func (v *AuthValidator) Validate(_ context.Context, obj any, _ ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(value)
	case *models.SignupRequest:
		return v.validateSignup(*value)

	case models.LoginRequest:
		return v.validateLogin(value)
	case *models.LoginRequest:
		return v.validateLogin(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *AuthValidator) validateSignup(r models.SignupRequest) error {
	r.Fullname = strings.TrimSpace(r.Fullname)
	r.Email = strings.TrimSpace(r.Email)

	err := validation.ValidateStruct(&r,
		validation.Field(&r.Fullname, validation.Required, validation.Length(1, MaxFullnameLength)),
		validation.Field(&r.Email, validation.Required, validation.Length(3, MaxEmailLength), is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(1, MaxPasswordLength)),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSignupRequest, err)
	}

	return nil
}

// validateLogin only checks presence: a malformed email simply fails to
// match any account.
func (v *AuthValidator) validateLogin(r models.LoginRequest) error {
	r.Email = strings.TrimSpace(r.Email)

	err := validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLoginRequest, err)
	}

	return nil
}
