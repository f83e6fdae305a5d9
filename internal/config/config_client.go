package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"
)

// Client defaults.
const (
	DefaultClientServerURL      = "http://localhost:5000"
	DefaultClientRequestTimeout = 10 * time.Second
	DefaultClientTokenFile      = ".tsxchat-token"
)

// ClientConfig is the configuration of the command-line API client.
//
// Values come from CLIENT_* environment variables overridden by the global
// flags that precede the subcommand.
type ClientConfig struct {
	// ServerURL is the base URL of the API server.
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout bounds every outbound request.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TokenFile is where the bearer token obtained at signup or login is
	// kept between invocations.
	// Env: CLIENT_TOKEN_FILE
	TokenFile string `env:"TOKEN_FILE"`
}

type clientEnv struct {
	Client ClientConfig `envPrefix:"CLIENT_"`
}

// GetClientConfig builds and validates the client config from the
// environment and the leading global flags in args. It returns the
// remaining arguments, starting with the subcommand name.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	var envCfg clientEnv
	if err := parseEnv(&envCfg); err != nil {
		return nil, nil, fmt.Errorf("error get client env config: %w", err)
	}
	cfg := envCfg.Client

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "API server base URL")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "Request timeout")
	fs.StringVar(&cfg.TokenFile, "token-file", cfg.TokenFile, "Token file path")

	if err := fs.Parse(args); err != nil {
		return nil, nil, errors.Join(ErrInvalidClientConfigs, err)
	}

	if cfg.ServerURL == "" {
		cfg.ServerURL = DefaultClientServerURL
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = DefaultClientRequestTimeout
	}
	if cfg.TokenFile == "" {
		cfg.TokenFile = DefaultClientTokenFile
	}

	return &cfg, fs.Args(), cfg.validate()
}
