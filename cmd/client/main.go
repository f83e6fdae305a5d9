package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sparxrahulpawar/tsxChat/internal/adapter"
	"github.com/sparxrahulpawar/tsxChat/internal/client"
	"github.com/sparxrahulpawar/tsxChat/internal/config"
	"github.com/sparxrahulpawar/tsxChat/internal/logger"
)

func main() {
	level := os.Getenv("CLIENT_LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	log, err := logger.New(os.Stderr, "tsxchat-client").WithLevel(level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, client.Usage)
		os.Exit(2)
	}

	api, err := adapter.NewHTTPAPIClient(*cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(api, client.NewFileTokenStore(cfg.TokenFile), os.Stdout, log)
	if err = app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) || errors.Is(err, client.ErrInvalidArgs) {
			fmt.Fprintln(os.Stderr, client.Usage)
			stop()
			os.Exit(2)
		}
		stop()
		os.Exit(1)
	}
}
