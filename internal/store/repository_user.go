package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/sparxrahulpawar/tsxChat/internal/logger"
	"github.com/sparxrahulpawar/tsxChat/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (CreatedAt, UpdatedAt).
//
// Errors raised by the INSERT may surface either from the query itself or
// when the RETURNING row is scanned, so both are handled in one place.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.executor(ctx).QueryRowContext(ctx, createUser, user.ID, user.Fullname, user.Email, user.Password)

	created, err := scanUser(row)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			log.Debug().Str("func", "*userRepository.CreateUser").Msg("email already taken")
			return models.User{}, ErrEmailAlreadyExists
		}

		r.db.logError(log, err, "*userRepository.CreateUser").Msg("error creating user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByEmail retrieves the user whose email equals email.
// Returns [ErrNoUserWasFound] when there is none.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

// FindUserByID retrieves the user with the given id.
// Returns [ErrNoUserWasFound] when there is none.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

func (r *userRepository) findOne(ctx context.Context, fn, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	found, err := scanUser(r.db.executor(ctx).QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || postgresError(err) == pgerrcode.NoDataFound {
			return models.User{}, ErrNoUserWasFound
		}

		r.db.logError(log, err, fn).Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

func scanUser(row *sql.Row) (models.User, error) {
	if err := row.Err(); err != nil {
		return models.User{}, err
	}

	var u models.User
	err := row.Scan(&u.ID, &u.Fullname, &u.Email, &u.Password, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
