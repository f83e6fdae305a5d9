// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the subcommand in args and returns when it is done.
	Run(ctx context.Context, args []string) error
}

// TokenStore keeps the bearer token between invocations.
type TokenStore interface {
	// Load returns the stored token, or "" if there is none.
	Load() (string, error)
	// Save replaces the stored token.
	Save(token string) error
	// Clear removes the stored token. Clearing an empty store is not an
	// error.
	Clear() error
}
