package handler

import (
	"github.com/sparxrahulpawar/tsxChat/internal/config"
	"github.com/sparxrahulpawar/tsxChat/internal/handler/http"
	"github.com/sparxrahulpawar/tsxChat/internal/logger"
	"github.com/sparxrahulpawar/tsxChat/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
