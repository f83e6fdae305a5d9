// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the merged and defaulted [StructuredConfig] can be
// used at startup. It is called after applyDefaults, so only values that
// have no default or that were explicitly set to nonsense can fail.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.App.TokenDuration < 0 || cfg.App.SessionDuration < 0 {
		return fmt.Errorf("%w: token and session durations must be positive", ErrInvalidAppConfigs)
	}

	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost must be within [%d, %d]",
			ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.RateLimitRequests < 0 || cfg.Server.RateLimitWindow < 0 {
		return fmt.Errorf("%w: timeouts and rate limits must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Workers.SessionSweepInterval < 0 {
		return fmt.Errorf("%w: session sweep interval must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.ServerURL == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidClientConfigs
	}

	return nil
}
