package store

import (
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sparxrahulpawar/tsxChat/models"
)

// psql builds statements with PostgreSQL "$n" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	userColumns       = `id, fullname, email, password, created_at, updated_at`
	sessionColumns    = `id, user_id, token, ip_address, user_agent, expires_at, created_at`
	onboardingColumns = `id, user_id, is_completed, step_welcome, step_profile, step_preferences, profile_data, preferences, completed_at, created_at, updated_at`
)

const (
	createUser = `INSERT INTO users (id, fullname, email, password)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	createSession = `INSERT INTO sessions (id, user_id, token, ip_address, user_agent, expires_at)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING ` + sessionColumns + `;`

	deleteSessionByToken = `DELETE FROM sessions
    WHERE token = $1;`

	createOnboardingIfNotExists = `INSERT INTO onboarding (user_id, profile_data, preferences)
    VALUES ($1, $2, $3)
    ON CONFLICT (user_id) DO NOTHING;`

	findOnboardingByUserID = `SELECT ` + onboardingColumns + `
    FROM onboarding
    WHERE user_id = $1;`
)

// buildFindActiveSessionQuery selects the session bound to exactly token
// for userID that is still valid at now.
func buildFindActiveSessionQuery(token, userID string, now time.Time) (string, []any, error) {
	query, args, err := psql.
		Select(sessionColumns).
		From("sessions").
		Where(sq.And{
			sq.Eq{"token": token},
			sq.Eq{"user_id": userID},
			sq.Gt{"expires_at": now},
		}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildDeleteExpiredSessionsQuery deletes every session expired at now.
func buildDeleteExpiredSessionsQuery(now time.Time) (string, []any, error) {
	query, args, err := psql.
		Delete("sessions").
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSaveOnboardingQuery overwrites every mutable column of the user's
// onboarding record and returns the stored row.
func buildSaveOnboardingQuery(o models.Onboarding) (string, []any, error) {
	profileData, preferences, err := encodeOnboardingDocuments(o)
	if err != nil {
		return "", nil, err
	}

	query, args, err := psql.
		Update("onboarding").
		Set("is_completed", o.IsCompleted).
		Set("step_welcome", o.Steps.Welcome).
		Set("step_profile", o.Steps.Profile).
		Set("step_preferences", o.Steps.Preferences).
		Set("profile_data", profileData).
		Set("preferences", preferences).
		Set("completed_at", o.CompletedAt).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": o.UserID}).
		Suffix("RETURNING " + onboardingColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// encodeOnboardingDocuments renders the JSONB columns of o as strings.
func encodeOnboardingDocuments(o models.Onboarding) (string, string, error) {
	if o.ProfileData.Interests == nil {
		o.ProfileData.Interests = []string{}
	}

	profileData, err := json.Marshal(o.ProfileData)
	if err != nil {
		return "", "", fmt.Errorf("%w: profile_data: %w", ErrEncodingJSONColumn, err)
	}

	preferences, err := json.Marshal(o.Preferences)
	if err != nil {
		return "", "", fmt.Errorf("%w: preferences: %w", ErrEncodingJSONColumn, err)
	}

	return string(profileData), string(preferences), nil
}
