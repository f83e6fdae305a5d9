package store

import (
	"context"
	"fmt"

	"github.com/sparxrahulpawar/tsxChat/internal/config"
	"github.com/sparxrahulpawar/tsxChat/internal/logger"
)

// Storages groups all repositories into a single value that can be passed
// to the service layer.
type Storages struct {
	UserRepository       UserRepository
	SessionRepository    SessionRepository
	OnboardingRepository OnboardingRepository
	Transactor           Transactor

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations and wires
// every repository to the resulting pool.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, logger), nil
}

func newStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, logger),
		SessionRepository:    NewSessionRepository(db, logger),
		OnboardingRepository: NewOnboardingRepository(db, logger),
		Transactor:           db,
		db:                   db,
	}
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
