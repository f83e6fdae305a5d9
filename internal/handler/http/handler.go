package http

import (
	"time"

	"github.com/sparxrahulpawar/tsxChat/internal/config"
	"github.com/sparxrahulpawar/tsxChat/internal/logger"
	"github.com/sparxrahulpawar/tsxChat/internal/service"
)

type Handler struct {
	services *service.Services

	requestTimeout time.Duration
	limiter        *ipRateLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		limiter:        newIPRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow),
		logger:         logger,
	}
}
