// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/sparxrahulpawar/tsxChat/models"
)

// MaxBioLength is the maximum number of characters in a profile bio.
const MaxBioLength = 500

// OnboardingValidator validates onboarding step requests and their
// step-specific payloads.
type OnboardingValidator struct {
}

// NewOnboardingValidator constructs a new OnboardingValidator and returns it
// as the Validator interface.
func NewOnboardingValidator() Validator {
	return &OnboardingValidator{}
}

func (v *OnboardingValidator) Validate(_ context.Context, obj any, _ ...string) error {
	switch value := obj.(type) {
	case models.OnboardingStep:
		return v.validateStep(value)

	case models.ProfileDataUpdate:
		return v.validateProfile(value)
	case *models.ProfileDataUpdate:
		return v.validateProfile(*value)

	case models.PreferencesUpdate:
		return v.validatePreferences(value)
	case *models.PreferencesUpdate:
		return v.validatePreferences(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *OnboardingValidator) validateStep(step models.OnboardingStep) error {
	if !step.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidOnboardingStep, step)
	}
	return nil
}

func (v *OnboardingValidator) validateProfile(p models.ProfileDataUpdate) error {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.Bio, validation.By(maxRunes(MaxBioLength))),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProfileData, err)
	}
	return nil
}

func (v *OnboardingValidator) validatePreferences(p models.PreferencesUpdate) error {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.Theme, validation.In(models.ThemeLight, models.ThemeDark, models.ThemeSystem)),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPreferences, err)
	}
	return nil
}

// maxRunes limits an optional string to n characters.
func maxRunes(n int) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(*string)
		if !ok {
			return errors.New("must be a string")
		}
		if s != nil && utf8.RuneCountInString(*s) > n {
			return fmt.Errorf("the length must be no more than %d", n)
		}
		return nil
	}
}
