package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sparxrahulpawar/tsxChat/models"
)

// ErrInvalidAuthorizationHeader is returned by ParseBearerToken when the
// header is not of the form "Bearer <token>".
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for user.
//
// The token carries the user's id and email plus the standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus tokenDuration
//   - ID        (jti): a random UUID, so two tokens issued within the same
//     second for the same user are still distinct strings
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("tsxchat", user, 7*24*time.Hour, "secret", time.Now())
func GenerateJWTToken(issuer string, user models.User, tokenDuration time.Duration, signKey string, now time.Time) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" || user.ID == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	claims := models.Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim presence and check
//   - Presence of the user id claim
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, "secret", "tsxchat")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	var claims models.Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.UserID == "" {
		return models.Token{}, errors.New("empty user id claim")
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-sensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !found || scheme != "Bearer" {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.Contains(token, " ") {
		return "", ErrInvalidAuthorizationHeader
	}

	return token, nil
}
