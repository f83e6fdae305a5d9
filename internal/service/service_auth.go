package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sparxrahulpawar/tsxChat/internal/config"
	"github.com/sparxrahulpawar/tsxChat/internal/logger"
	"github.com/sparxrahulpawar/tsxChat/internal/store"
	"github.com/sparxrahulpawar/tsxChat/internal/utils"
	"github.com/sparxrahulpawar/tsxChat/models"
)

// authService is the concrete implementation of AuthService.
// It stores accounts in a UserRepository, hashes passwords with bcrypt and
// binds every issued token to a row in a SessionRepository so that a token
// can be revoked before it expires.
type authService struct {
	userRepository    store.UserRepository
	sessionRepository store.SessionRepository
	transactor        store.Transactor
	tokenService      TokenService

	// passwordHashCost is the bcrypt cost used when hashing new passwords.
	passwordHashCost int

	// sessionDuration is the lifetime of a session row.
	sessionDuration time.Duration

	idGenerator *utils.UUIDGenerator
	now         func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and token service and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	sessionRepository store.SessionRepository,
	transactor store.Transactor,
	tokenService TokenService,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		transactor:        transactor,
		tokenService:      tokenService,
		passwordHashCost:  cfg.PasswordHashCost,
		sessionDuration:   cfg.SessionDuration,
		idGenerator:       utils.NewUUIDGenerator(),
		now:               time.Now,
		logger:            logger,
	}
}

// Signup creates a new account and its first session in one transaction.
//
// The email is trimmed and lowercased before the uniqueness check. Returns:
//   - ErrEmailTaken if the email is already registered, including the case
//     where a concurrent signup wins the insert race.
//   - A wrapped hashing, storage or token error otherwise.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx).With().Str("func", "*authService.Signup").Logger()

	email := normalizeEmail(req.Email)

	_, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		log.Debug().Msg("email already registered")
		return models.AuthResult{}, ErrEmailTaken
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Msg("user search by email failed")
		return models.AuthResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	hash, err := utils.HashPassword(req.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.AuthResult{}, fmt.Errorf("password hashing failed: %w", err)
	}

	// the account and its first session are stored together or not at all
	var result models.AuthResult
	err = a.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		user, err := a.userRepository.CreateUser(ctx, models.User{
			ID:       a.idGenerator.Generate(),
			Fullname: strings.TrimSpace(req.Fullname),
			Email:    email,
			Password: hash,
		})
		if err != nil {
			if errors.Is(err, store.ErrEmailAlreadyExists) {
				log.Debug().Msg("email taken by a concurrent signup")
				return ErrEmailTaken
			}
			log.Err(err).Msg("user creation ended with error")
			return fmt.Errorf("user creation ended with error: %w", err)
		}

		result, err = a.openSession(ctx, user)
		return err
	})
	if err != nil {
		return models.AuthResult{}, err
	}

	return result, nil
}

// Login authenticates an existing user and opens a new session.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx).With().Str("func", "*authService.Login").Logger()

	user, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Msg("unknown email")
			return models.AuthResult{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user search by email failed")
		return models.AuthResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.ComparePasswordAndHash(req.Password, user.Password); err != nil {
		if errors.Is(err, utils.ErrMismatchedHashAndPassword) {
			log.Debug().Str("user_id", user.ID).Msg("wrong password")
			return models.AuthResult{}, ErrInvalidCredentials
		}
		log.Err(err).Str("user_id", user.ID).Msg("password comparison failed")
		return models.AuthResult{}, fmt.Errorf("password comparison failed: %w", err)
	}

	return a.openSession(ctx, user)
}

// GetCurrentUser returns the user with the given id, without the password
// hash, or ErrUserNotFound.
func (a *authService) GetCurrentUser(ctx context.Context, userID string) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*authService.GetCurrentUser").Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user.Sanitized(), nil
}

// Logout deletes the session holding token. ErrLogoutSessionNotFound is
// returned when no such session exists, e.g. on a second logout.
func (a *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return ErrInvalidDataProvided
	}

	if err := a.sessionRepository.DeleteSessionByToken(ctx, token); err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return ErrLogoutSessionNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*authService.Logout").Msg("session deletion failed")
		return fmt.Errorf("session deletion failed: %w", err)
	}

	return nil
}

// Authenticate verifies the token signature, then requires a live session
// row bound to exactly this token and its subject, then loads the user.
//
// Each stage has its own error: ErrTokenIsExpiredOrInvalid,
// ErrSessionInvalid, ErrUserNoLongerExists.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.Identity, error) {
	log := logger.FromContext(ctx).With().Str("func", "*authService.Authenticate").Logger()

	token, err := a.tokenService.ParseToken(ctx, tokenString)
	if err != nil {
		return models.Identity{}, err
	}

	if _, err = a.sessionRepository.FindActiveSession(ctx, tokenString, token.UserID, a.now()); err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			log.Debug().Str("user_id", token.UserID).Msg("no live session for token")
			return models.Identity{}, ErrSessionInvalid
		}
		log.Err(err).Msg("session lookup failed")
		return models.Identity{}, fmt.Errorf("session lookup failed: %w", err)
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("user_id", token.UserID).Msg("token subject no longer exists")
			return models.Identity{}, ErrUserNoLongerExists
		}
		log.Err(err).Msg("user search by id failed")
		return models.Identity{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return models.IdentityOf(user), nil
}

// openSession issues a token for user and stores the session bound to it.
func (a *authService) openSession(ctx context.Context, user models.User) (models.AuthResult, error) {
	log := logger.FromContext(ctx).With().Str("func", "*authService.openSession").Logger()

	token, err := a.tokenService.CreateToken(ctx, user)
	if err != nil {
		return models.AuthResult{}, err
	}

	meta := utils.ClientMetadataFromContext(ctx)
	_, err = a.sessionRepository.CreateSession(ctx, models.Session{
		ID:        a.idGenerator.Generate(),
		UserID:    user.ID,
		Token:     token.SignedString,
		IPAddress: optional(meta.IPAddress),
		UserAgent: optional(meta.UserAgent),
		ExpiresAt: a.now().Add(a.sessionDuration),
	})
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("session creation failed")
		return models.AuthResult{}, fmt.Errorf("session creation failed: %w", err)
	}

	return models.AuthResult{
		User:  user.Sanitized(),
		Token: token.SignedString,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
