// Package config provides configuration loading, merging, and validation
// facilities for the tsxChat service and its command-line client.
//
// Server configuration is assembled from multiple sources in the following
// priority order (later sources override earlier non-zero fields):
//  1. JSON config file
//  2. Environment variables
//  3. Command-line flags
//
// Defaults are applied to fields left empty by every source, then the result
// is validated. The token signing key and the database DSN have no default:
// startup fails when they are missing.
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the command-line client.
package config
