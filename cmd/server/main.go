package main

import (
	"context"
	"fmt"

	"github.com/sparxrahulpawar/tsxChat/internal/config"
	"github.com/sparxrahulpawar/tsxChat/internal/handler"
	"github.com/sparxrahulpawar/tsxChat/internal/logger"
	"github.com/sparxrahulpawar/tsxChat/internal/server"
	"github.com/sparxrahulpawar/tsxChat/internal/service"
	"github.com/sparxrahulpawar/tsxChat/internal/store"
	"github.com/sparxrahulpawar/tsxChat/internal/workers"
	"github.com/sparxrahulpawar/tsxChat/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo.String())

	log := logger.NewLogger("tsxchat-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithLevel(cfg.App.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Dur("session_duration", cfg.App.SessionDuration).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services := service.NewServices(storages, cfg.App, buildInfo, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	bgWorkers := workers.NewWorkers(
		workers.NewSessionSweeper(storages.SessionRepository, cfg.Workers.SessionSweepInterval, log),
	)

	srv, err := server.NewServer(handlers, bgWorkers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
