package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSessionNotFound is returned when no live session matches the lookup
	// or when a delete removes nothing.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrSessionAlreadyExists is returned when a session with the same token
	// is already stored.
	ErrSessionAlreadyExists = errors.New("session with this token already exists")

	// ErrOnboardingNotFound is returned when the user has no onboarding record.
	ErrOnboardingNotFound = errors.New("onboarding record was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrEncodingJSONColumn is returned when a JSONB column cannot be
	// encoded or decoded.
	ErrEncodingJSONColumn = errors.New("failed to encode json column")
)
