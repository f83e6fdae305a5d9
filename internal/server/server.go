package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sparxrahulpawar/tsxChat/internal/config"
	"github.com/sparxrahulpawar/tsxChat/internal/handler"
	"github.com/sparxrahulpawar/tsxChat/internal/logger"
	"github.com/sparxrahulpawar/tsxChat/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger
}

// NewServer builds the HTTP server over handlers. Background workers, if
// any, run for as long as the server does.
func NewServer(handlers *handler.Handlers, bgWorkers *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoHTTPHandler
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoHTTPAddress
	}

	if bgWorkers == nil {
		bgWorkers = workers.NewWorkers()
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    bgWorkers,
		logger:     logger,
	}, nil
}

// RunServer blocks until SIGTERM, SIGINT or SIGQUIT is received and the
// server and workers have stopped.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

func (s *server) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workersDone := make(chan struct{})
	go func() {
		s.workers.Run(ctx)
		close(workersDone)
	}()

	serverDone := make(chan struct{})
	go func() {
		s.logger.Info().Msg("Launching HTTP server")
		s.httpServer.RunServer()
		close(serverDone)
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		<-serverDone
	case <-serverDone:
		// listener failed; nothing left to shut down
		s.logger.Warn().Msg("HTTP server stopped unexpectedly")
	}

	cancel()
	<-workersDone
	s.logger.Info().Msg("server Shutdown gracefully")
}
