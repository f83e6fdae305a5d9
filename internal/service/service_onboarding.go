// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sparxrahulpawar/tsxChat/internal/logger"
	"github.com/sparxrahulpawar/tsxChat/internal/store"
	"github.com/sparxrahulpawar/tsxChat/models"
)

// onboardingService walks a user through the welcome, profile and
// preferences steps. Every operation except GetStatus requires the record
// to exist already.
type onboardingService struct {
	onboardingRepository store.OnboardingRepository

	now func() time.Time

	logger *logger.Logger
}

func NewOnboardingService(onboardingRepository store.OnboardingRepository, logger *logger.Logger) OnboardingService {
	return &onboardingService{
		onboardingRepository: onboardingRepository,
		now:                  time.Now,
		logger:               logger,
	}
}

// GetStatus returns the record of userID, creating the default one first if
// needed. Concurrent first calls converge on a single record.
func (s *onboardingService) GetStatus(ctx context.Context, userID string) (models.Onboarding, error) {
	log := logger.FromContext(ctx).With().Str("func", "*onboardingService.GetStatus").Logger()

	onboarding, err := s.onboardingRepository.FindOnboardingByUserID(ctx, userID)
	if err == nil {
		return onboarding, nil
	}
	if !errors.Is(err, store.ErrOnboardingNotFound) {
		log.Err(err).Str("user_id", userID).Msg("onboarding search failed")
		return models.Onboarding{}, fmt.Errorf("onboarding search failed: %w", err)
	}

	if err = s.onboardingRepository.CreateOnboardingIfNotExists(ctx, models.NewOnboarding(userID)); err != nil {
		log.Err(err).Str("user_id", userID).Msg("onboarding creation failed")
		return models.Onboarding{}, fmt.Errorf("onboarding creation failed: %w", err)
	}

	onboarding, err = s.onboardingRepository.FindOnboardingByUserID(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("onboarding search after creation failed")
		return models.Onboarding{}, fmt.Errorf("onboarding search after creation failed: %w", err)
	}

	return onboarding, nil
}

// UpdateStep marks req.Step as done and merges the step payload, if any.
func (s *onboardingService) UpdateStep(ctx context.Context, userID string, req models.OnboardingStepRequest) (models.Onboarding, error) {
	if !req.Step.IsValid() {
		return models.Onboarding{}, ErrInvalidStep
	}

	onboarding, err := s.find(ctx, userID)
	if err != nil {
		return models.Onboarding{}, err
	}

	payload, err := decodeStepPayload(req)
	if err != nil {
		return models.Onboarding{}, err
	}

	onboarding.MarkStep(req.Step)
	switch upd := payload.(type) {
	case models.ProfileDataUpdate:
		onboarding.ApplyProfile(upd)
	case models.PreferencesUpdate:
		onboarding.ApplyPreferences(upd)
	}

	return s.save(ctx, onboarding)
}

// Complete marks the flow as finished. All steps must be done first.
func (s *onboardingService) Complete(ctx context.Context, userID string) (models.Onboarding, error) {
	onboarding, err := s.find(ctx, userID)
	if err != nil {
		return models.Onboarding{}, err
	}

	if !onboarding.AllStepsCompleted() {
		return models.Onboarding{}, ErrOnboardingStepsIncomplete
	}

	onboarding.Complete(s.now())

	return s.save(ctx, onboarding)
}

// Reset clears step progress and completion; profile data and preferences
// survive.
func (s *onboardingService) Reset(ctx context.Context, userID string) (models.Onboarding, error) {
	onboarding, err := s.find(ctx, userID)
	if err != nil {
		return models.Onboarding{}, err
	}

	onboarding.Reset()

	return s.save(ctx, onboarding)
}

func (s *onboardingService) find(ctx context.Context, userID string) (models.Onboarding, error) {
	onboarding, err := s.onboardingRepository.FindOnboardingByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrOnboardingNotFound) {
			return models.Onboarding{}, ErrOnboardingNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*onboardingService.find").Str("user_id", userID).Msg("onboarding search failed")
		return models.Onboarding{}, fmt.Errorf("onboarding search failed: %w", err)
	}

	return onboarding, nil
}

func (s *onboardingService) save(ctx context.Context, onboarding models.Onboarding) (models.Onboarding, error) {
	saved, err := s.onboardingRepository.SaveOnboarding(ctx, onboarding)
	if err != nil {
		if errors.Is(err, store.ErrOnboardingNotFound) {
			return models.Onboarding{}, ErrOnboardingNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*onboardingService.save").Str("user_id", onboarding.UserID).Msg("onboarding update failed")
		return models.Onboarding{}, fmt.Errorf("onboarding update failed: %w", err)
	}

	return saved, nil
}

// decodeStepPayload decodes req.Data into the update type of req.Step.
// It returns nil for the welcome step and for an absent payload.
func decodeStepPayload(req models.OnboardingStepRequest) (any, error) {
	data := bytes.TrimSpace(req.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}

	switch req.Step {
	case models.StepProfile:
		var upd models.ProfileDataUpdate
		if err := json.Unmarshal(data, &upd); err != nil {
			return nil, fmt.Errorf("%w: profile data: %w", ErrInvalidDataProvided, err)
		}
		return upd, nil
	case models.StepPreferences:
		var upd models.PreferencesUpdate
		if err := json.Unmarshal(data, &upd); err != nil {
			return nil, fmt.Errorf("%w: preferences: %w", ErrInvalidDataProvided, err)
		}
		return upd, nil
	default:
		return nil, nil
	}
}
