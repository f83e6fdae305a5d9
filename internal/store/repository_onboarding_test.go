// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/sparxrahulpawar/tsxChat/internal/logger"
	"github.com/sparxrahulpawar/tsxChat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var onboardingTestColumns = []string{
	"id", "user_id", "is_completed", "step_welcome", "step_profile", "step_preferences",
	"profile_data", "preferences", "completed_at", "created_at", "updated_at",
}

const defaultPreferencesJSON = `{"theme":"system","notifications":{"email":true,"push":true,"sound":true},"privacy":{"showOnlineStatus":true,"showLastSeen":true,"allowDirectMessages":true}}`

func newTestOnboardingRepo(t *testing.T) (*onboardingRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &onboardingRepository{db: db, logger: logger.Nop()}, mock
}

func TestCreateOnboardingIfNotExists(t *testing.T) {
	repo, mock := newTestOnboardingRepo(t)

	mock.ExpectExec("INSERT INTO onboarding (.+) ON CONFLICT \\(user_id\\) DO NOTHING").
		WithArgs("u1", `{"avatar":null,"interests":[]}`, defaultPreferencesJSON).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateOnboardingIfNotExists(context.Background(), models.NewOnboarding("u1"))
	assert.NoError(t, err)
}

func TestCreateOnboardingIfNotExists_AlreadyThere(t *testing.T) {
	repo, mock := newTestOnboardingRepo(t)

	mock.ExpectExec("INSERT INTO onboarding").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.CreateOnboardingIfNotExists(context.Background(), models.NewOnboarding("u1"))
	assert.NoError(t, err)
}

func TestCreateOnboardingIfNotExists_UnknownUser(t *testing.T) {
	repo, mock := newTestOnboardingRepo(t)

	mock.ExpectExec("INSERT INTO onboarding").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	err := repo.CreateOnboardingIfNotExists(context.Background(), models.NewOnboarding("u1"))
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindOnboardingByUserID_Success(t *testing.T) {
	repo, mock := newTestOnboardingRepo(t)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM onboarding WHERE user_id").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(onboardingTestColumns).AddRow(
			int64(7), "u1", true, true, true, true,
			[]byte(`{"avatar":"a.png","bio":"hi","interests":["go"]}`),
			[]byte(`{"theme":"dark","notifications":{"email":false,"push":true,"sound":true},"privacy":{"showOnlineStatus":true,"showLastSeen":false,"allowDirectMessages":true}}`),
			now, now, now,
		))

	o, err := repo.FindOnboardingByUserID(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, int64(7), o.ID)
	assert.True(t, o.IsCompleted)
	assert.True(t, o.AllStepsCompleted())
	require.NotNil(t, o.ProfileData.Avatar)
	assert.Equal(t, "a.png", *o.ProfileData.Avatar)
	assert.Equal(t, []string{"go"}, o.ProfileData.Interests)
	assert.Equal(t, models.ThemeDark, o.Preferences.Theme)
	assert.False(t, o.Preferences.Notifications.Email)
	assert.False(t, o.Preferences.Privacy.ShowLastSeen)
	require.NotNil(t, o.CompletedAt)
}

func TestFindOnboardingByUserID_NullsAndEmptyInterests(t *testing.T) {
	repo, mock := newTestOnboardingRepo(t)

	now := time.Now()
	mock.ExpectQuery("FROM onboarding").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(onboardingTestColumns).AddRow(
			int64(1), "u1", false, false, false, false,
			[]byte(`{"avatar":null}`), []byte(defaultPreferencesJSON),
			nil, now, now,
		))

	o, err := repo.FindOnboardingByUserID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Nil(t, o.CompletedAt)
	assert.Nil(t, o.ProfileData.Avatar)
	assert.NotNil(t, o.ProfileData.Interests)
	assert.Equal(t, models.DefaultPreferences(), o.Preferences)
}

func TestFindOnboardingByUserID_NotFound(t *testing.T) {
	repo, mock := newTestOnboardingRepo(t)

	mock.ExpectQuery("FROM onboarding").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(onboardingTestColumns))

	_, err := repo.FindOnboardingByUserID(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrOnboardingNotFound)
}

func TestFindOnboardingByUserID_BadDocument(t *testing.T) {
	repo, mock := newTestOnboardingRepo(t)

	now := time.Now()
	mock.ExpectQuery("FROM onboarding").
		WillReturnRows(sqlmock.NewRows(onboardingTestColumns).AddRow(
			int64(1), "u1", false, false, false, false,
			[]byte(`not json`), []byte(defaultPreferencesJSON),
			nil, now, now,
		))

	_, err := repo.FindOnboardingByUserID(context.Background(), "u1")
	assert.ErrorIs(t, err, ErrEncodingJSONColumn)
}

func TestSaveOnboarding_Success(t *testing.T) {
	repo, mock := newTestOnboardingRepo(t)

	o := models.NewOnboarding("u1")
	o.MarkStep(models.StepWelcome)
	now := time.Now()

	mock.ExpectQuery("UPDATE onboarding SET (.+) WHERE user_id = \\$8 RETURNING").
		WithArgs(false, true, false, false, `{"avatar":null,"interests":[]}`, defaultPreferencesJSON, sqlmock.AnyArg(), "u1").
		WillReturnRows(sqlmock.NewRows(onboardingTestColumns).AddRow(
			int64(1), "u1", false, true, false, false,
			[]byte(`{"avatar":null,"interests":[]}`), []byte(defaultPreferencesJSON),
			nil, now, now,
		))

	saved, err := repo.SaveOnboarding(context.Background(), o)
	require.NoError(t, err)
	assert.True(t, saved.Steps.Welcome)
	assert.False(t, saved.Steps.Profile)
}

func TestSaveOnboarding_NotFound(t *testing.T) {
	repo, mock := newTestOnboardingRepo(t)

	mock.ExpectQuery("UPDATE onboarding").
		WillReturnRows(sqlmock.NewRows(onboardingTestColumns))

	_, err := repo.SaveOnboarding(context.Background(), models.NewOnboarding("u1"))
	assert.ErrorIs(t, err, ErrOnboardingNotFound)
}

func TestSaveOnboarding_UnexpectedError(t *testing.T) {
	repo, mock := newTestOnboardingRepo(t)

	mock.ExpectQuery("UPDATE onboarding").WillReturnError(errors.New("boom"))

	_, err := repo.SaveOnboarding(context.Background(), models.NewOnboarding("u1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected DB error")
}
