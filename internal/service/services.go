package service

import (
	"github.com/sparxrahulpawar/tsxChat/internal/config"
	"github.com/sparxrahulpawar/tsxChat/internal/logger"
	"github.com/sparxrahulpawar/tsxChat/internal/store"
	"github.com/sparxrahulpawar/tsxChat/models"
)

type Services struct {
	AuthService       AuthService
	TokenService      TokenService
	OnboardingService OnboardingService
	AppInfoService    AppInfoService
}

// NewServices wires the services over storages. Auth and onboarding are
// wrapped with their validation decorators.
func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	tokenService := NewTokenService(cfg, logger)

	authService := NewAuthValidationService().Wrap(
		NewAuthService(storages.UserRepository, storages.SessionRepository, storages.Transactor, tokenService, cfg, logger),
	)
	onboardingService := NewOnboardingValidationService().Wrap(
		NewOnboardingService(storages.OnboardingRepository, logger),
	)

	return &Services{
		AuthService:       authService,
		TokenService:      tokenService,
		OnboardingService: onboardingService,
		AppInfoService:    NewAppInfoService(buildInfo, logger),
	}
}
