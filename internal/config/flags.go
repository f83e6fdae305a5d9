package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all server configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "168h", "30m")
//	-session-duration session lifetime (e.g., "168h")
//	-hash-cost bcrypt cost factor
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-rate-limit-requests requests allowed per client IP per window
//	-rate-limit-window rate limit window (e.g., "15m")
//	-session-sweep-interval expired session cleanup interval (e.g., "1h")
//	-log-level minimal log level (e.g., "debug", "info")
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var sessionDuration time.Duration
	var hashCost int
	var requestTimeout time.Duration
	var rateLimitRequests int
	var rateLimitWindow time.Duration
	var sweepInterval time.Duration
	var logLevel string

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 168h, 30m)")
	fs.DurationVar(&sessionDuration, "session-duration", 0, "Session lifetime (e.g., 168h)")
	fs.IntVar(&hashCost, "hash-cost", 0, "Password hash cost")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&rateLimitRequests, "rate-limit-requests", 0, "Requests per client IP per window")
	fs.DurationVar(&rateLimitWindow, "rate-limit-window", 0, "Rate limit window (e.g., 15m)")
	fs.DurationVar(&sweepInterval, "session-sweep-interval", 0, "Expired session cleanup interval")
	fs.StringVar(&logLevel, "log-level", "", "Minimal log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:     tokenSignKey,
			TokenIssuer:      tokenIssuer,
			TokenDuration:    tokenDuration,
			SessionDuration:  sessionDuration,
			PasswordHashCost: hashCost,
			LogLevel:         logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:       serverAddress.String(),
			RequestTimeout:    requestTimeout,
			RateLimitRequests: rateLimitRequests,
			RateLimitWindow:   rateLimitWindow,
		},
		Workers: Workers{
			SessionSweepInterval: sweepInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be within [1, 65535]")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
