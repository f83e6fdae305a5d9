// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/sparxrahulpawar/tsxChat/internal/logger"
	"github.com/sparxrahulpawar/tsxChat/models"
)

// sessionRepository is the PostgreSQL-backed implementation of
// [SessionRepository] over the "sessions" table.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession inserts session and returns the stored row.
//
// Error handling:
//   - unique_violation on the token → [ErrSessionAlreadyExists].
//   - foreign_key_violation on the owner → [ErrNoUserWasFound].
//   - Any other error → wrapped as "unexpected DB error".
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	row := r.db.executor(ctx).QueryRowContext(ctx, createSession,
		session.ID,
		session.UserID,
		session.Token,
		session.IPAddress,
		session.UserAgent,
		session.ExpiresAt,
	)

	created, err := scanSession(row)
	if err != nil {
		r.db.logError(log, err, "*sessionRepository.CreateSession").
			Str("user_id", session.UserID).
			Msg("error creating session")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Session{}, ErrSessionAlreadyExists
		case pgerrcode.ForeignKeyViolation:
			return models.Session{}, ErrNoUserWasFound
		default:
			return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindActiveSession returns the session bound to exactly token for userID
// whose expiry is after now.
func (r *sessionRepository) FindActiveSession(ctx context.Context, token, userID string, now time.Time) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindActiveSessionQuery(token, userID, now)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.FindActiveSession").Msg("failed to create query")
		return models.Session{}, err
	}

	found, err := scanSession(r.db.executor(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}

		r.db.logError(log, err, "*sessionRepository.FindActiveSession").
			Str("user_id", userID).
			Msg("error finding session")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// DeleteSessionByToken removes the session holding token.
func (r *sessionRepository) DeleteSessionByToken(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.executor(ctx).ExecContext(ctx, deleteSessionByToken, token)
	if err != nil {
		r.db.logError(log, err, "*sessionRepository.DeleteSessionByToken").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.db.logError(log, err, "*sessionRepository.DeleteSessionByToken").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// DeleteExpiredSessions removes every session whose expiry is at or before
// now and reports how many rows were removed.
func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteExpiredSessionsQuery(now)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("failed to create query")
		return 0, err
	}

	result, err := r.db.executor(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		r.db.logError(log, err, "*sessionRepository.DeleteExpiredSessions").Msg("error deleting expired sessions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

func scanSession(row *sql.Row) (models.Session, error) {
	if err := row.Err(); err != nil {
		return models.Session{}, err
	}

	var (
		s         models.Session
		ipAddress sql.NullString
		userAgent sql.NullString
	)
	err := row.Scan(&s.ID, &s.UserID, &s.Token, &ipAddress, &userAgent, &s.ExpiresAt, &s.CreatedAt)
	if err != nil {
		return models.Session{}, err
	}

	if ipAddress.Valid {
		s.IPAddress = &ipAddress.String
	}
	if userAgent.Valid {
		s.UserAgent = &userAgent.String
	}

	return s, nil
}
