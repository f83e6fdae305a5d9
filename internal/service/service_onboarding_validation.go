package service

import (
	"context"
	"fmt"

	"github.com/sparxrahulpawar/tsxChat/internal/validators"
	"github.com/sparxrahulpawar/tsxChat/models"
)

// OnboardingValidationService rejects unknown steps and malformed step
// payloads before they reach the wrapped OnboardingService.
type OnboardingValidationService struct {
	inner     OnboardingService
	validator validators.Validator
}

func NewOnboardingValidationService() OnboardingServiceWrapper {
	return &OnboardingValidationService{
		validator: validators.NewOnboardingValidator(),
	}
}

func (v *OnboardingValidationService) GetStatus(ctx context.Context, userID string) (models.Onboarding, error) {
	return v.inner.GetStatus(ctx, userID)
}

func (v *OnboardingValidationService) UpdateStep(ctx context.Context, userID string, req models.OnboardingStepRequest) (models.Onboarding, error) {
	if req.Step == "" {
		return models.Onboarding{}, ErrStepRequired
	}
	if err := v.validator.Validate(ctx, req.Step); err != nil {
		return models.Onboarding{}, fmt.Errorf("%w: %w", ErrInvalidStep, err)
	}

	payload, err := decodeStepPayload(req)
	if err != nil {
		return models.Onboarding{}, err
	}
	if payload != nil {
		if err = v.validator.Validate(ctx, payload); err != nil {
			return models.Onboarding{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
	}

	return v.inner.UpdateStep(ctx, userID, req)
}

func (v *OnboardingValidationService) Complete(ctx context.Context, userID string) (models.Onboarding, error) {
	return v.inner.Complete(ctx, userID)
}

func (v *OnboardingValidationService) Reset(ctx context.Context, userID string) (models.Onboarding, error) {
	return v.inner.Reset(ctx, userID)
}

func (v *OnboardingValidationService) Wrap(wrapper OnboardingService) OnboardingService {
	v.inner = wrapper
	return v
}
