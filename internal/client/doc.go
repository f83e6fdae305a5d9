// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It parses a subcommand, restores the bearer token kept between
// invocations, calls the server through [adapter.APIClient] and prints the
// result as JSON.
package client
