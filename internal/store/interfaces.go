//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock
package store

import (
	"context"
	"time"

	"github.com/sparxrahulpawar/tsxChat/models"
)

// UserRepository persists user accounts in the "users" table.
type UserRepository interface {
	// CreateUser inserts user and returns the stored row.
	// A taken email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns the user with the given normalized email or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns the user with the given id or [ErrNoUserWasFound].
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// SessionRepository persists sessions in the "sessions" table.
type SessionRepository interface {
	// CreateSession inserts session and returns the stored row.
	CreateSession(ctx context.Context, session models.Session) (models.Session, error)
	// FindActiveSession returns the session holding exactly token for
	// userID that has not expired at now, or [ErrSessionNotFound].
	FindActiveSession(ctx context.Context, token, userID string, now time.Time) (models.Session, error)
	// DeleteSessionByToken removes the session holding token.
	// Returns [ErrSessionNotFound] if no row was deleted.
	DeleteSessionByToken(ctx context.Context, token string) error
	// DeleteExpiredSessions removes every session expired at now and
	// returns the number of removed rows.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// OnboardingRepository persists onboarding records in the "onboarding" table.
type OnboardingRepository interface {
	// CreateOnboardingIfNotExists inserts onboarding unless the user already
	// has a record. Concurrent callers never produce two records.
	CreateOnboardingIfNotExists(ctx context.Context, onboarding models.Onboarding) error
	// FindOnboardingByUserID returns the user's record or
	// [ErrOnboardingNotFound].
	FindOnboardingByUserID(ctx context.Context, userID string) (models.Onboarding, error)
	// SaveOnboarding overwrites the mutable columns of the user's record and
	// returns the stored row.
	SaveOnboarding(ctx context.Context, onboarding models.Onboarding) (models.Onboarding, error)
}

// Transactor runs a unit of work atomically. Repository calls made with
// the ctx handed to fn share one transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ErrorClassificator decides whether a failed database operation is
// transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
