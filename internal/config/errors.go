package config

import "errors"

// Validation errors returned when the merged configuration is incomplete or
// invalid. Callers can match against them with [errors.Is].
var (
	// ErrMissingTokenSignKey is returned when no token signing key is
	// configured. The service refuses to start with a guessable secret.
	ErrMissingTokenSignKey = errors.New("token sign key is not configured")

	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidAppConfigs indicates invalid token, session or hashing
	// settings (for example, a negative duration or an out-of-range cost).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidServerConfigs indicates invalid server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidWorkerConfigs indicates invalid background worker settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")

	// ErrInvalidClientConfigs indicates invalid command-line client settings.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
