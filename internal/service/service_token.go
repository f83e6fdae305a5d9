package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sparxrahulpawar/tsxChat/internal/config"
	"github.com/sparxrahulpawar/tsxChat/internal/logger"
	"github.com/sparxrahulpawar/tsxChat/internal/utils"
	"github.com/sparxrahulpawar/tsxChat/models"
)

// tokenService issues and verifies the HS256 tokens handed out at signup
// and login.
type tokenService struct {
	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewTokenService constructs a TokenService from the application config.
// The sign key is expected to be validated by the config layer already.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           time.Now,
		logger:        logger,
	}
}

// CreateToken issues a signed token for user carrying its id and email.
//
// Returns the token model on success or an error wrapping
// ErrTokenCreationFailed.
func (s *tokenService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.tokenIssuer, user, s.tokenDuration, s.tokenSignKey, s.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.CreateToken").Msg("token generation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw token string.
//
// Any validation failure (expired, wrong issuer, malformed, foreign
// signature) is normalised to ErrTokenIsExpiredOrInvalid.
func (s *tokenService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*tokenService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
