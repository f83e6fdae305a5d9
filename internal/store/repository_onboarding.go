package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/sparxrahulpawar/tsxChat/internal/logger"
	"github.com/sparxrahulpawar/tsxChat/models"
)

// onboardingRepository is the PostgreSQL-backed implementation of
// [OnboardingRepository]. Profile data and preferences are stored as JSONB
// documents.
type onboardingRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewOnboardingRepository constructs an [OnboardingRepository] backed by db.
func NewOnboardingRepository(db *DB, logger *logger.Logger) OnboardingRepository {
	logger.Debug().Msg("creating onboarding repository")
	return &onboardingRepository{
		db:     db,
		logger: logger,
	}
}

// CreateOnboardingIfNotExists inserts the record unless one already exists
// for the user; the conflict on onboarding_user_id_key is swallowed.
func (r *onboardingRepository) CreateOnboardingIfNotExists(ctx context.Context, onboarding models.Onboarding) error {
	log := logger.FromContext(ctx)

	profileData, preferences, err := encodeOnboardingDocuments(onboarding)
	if err != nil {
		log.Err(err).Str("func", "*onboardingRepository.CreateOnboardingIfNotExists").Msg("failed to encode documents")
		return err
	}

	_, err = r.db.executor(ctx).ExecContext(ctx, createOnboardingIfNotExists, onboarding.UserID, profileData, preferences)
	if err != nil {
		r.db.logError(log, err, "*onboardingRepository.CreateOnboardingIfNotExists").
			Str("user_id", onboarding.UserID).
			Msg("error creating onboarding record")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrNoUserWasFound
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// FindOnboardingByUserID returns the user's record.
func (r *onboardingRepository) FindOnboardingByUserID(ctx context.Context, userID string) (models.Onboarding, error) {
	log := logger.FromContext(ctx)

	found, err := scanOnboarding(r.db.executor(ctx).QueryRowContext(ctx, findOnboardingByUserID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Onboarding{}, ErrOnboardingNotFound
		}

		r.db.logError(log, err, "*onboardingRepository.FindOnboardingByUserID").
			Str("user_id", userID).
			Msg("error finding onboarding record")
		return models.Onboarding{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// SaveOnboarding overwrites the user's record with onboarding.
func (r *onboardingRepository) SaveOnboarding(ctx context.Context, onboarding models.Onboarding) (models.Onboarding, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveOnboardingQuery(onboarding)
	if err != nil {
		log.Err(err).Str("func", "*onboardingRepository.SaveOnboarding").Msg("failed to create query")
		return models.Onboarding{}, err
	}

	saved, err := scanOnboarding(r.db.executor(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Onboarding{}, ErrOnboardingNotFound
		}

		r.db.logError(log, err, "*onboardingRepository.SaveOnboarding").
			Str("user_id", onboarding.UserID).
			Msg("error saving onboarding record")
		return models.Onboarding{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

func scanOnboarding(row *sql.Row) (models.Onboarding, error) {
	if err := row.Err(); err != nil {
		return models.Onboarding{}, err
	}

	var (
		o           models.Onboarding
		profileData []byte
		preferences []byte
		completedAt sql.NullTime
	)
	err := row.Scan(
		&o.ID,
		&o.UserID,
		&o.IsCompleted,
		&o.Steps.Welcome,
		&o.Steps.Profile,
		&o.Steps.Preferences,
		&profileData,
		&preferences,
		&completedAt,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return models.Onboarding{}, err
	}

	if err := json.Unmarshal(profileData, &o.ProfileData); err != nil {
		return models.Onboarding{}, fmt.Errorf("%w: profile_data: %w", ErrEncodingJSONColumn, err)
	}
	if o.ProfileData.Interests == nil {
		o.ProfileData.Interests = []string{}
	}

	if err := json.Unmarshal(preferences, &o.Preferences); err != nil {
		return models.Onboarding{}, fmt.Errorf("%w: preferences: %w", ErrEncodingJSONColumn, err)
	}

	if completedAt.Valid {
		o.CompletedAt = &completedAt.Time
	}

	return o, nil
}
