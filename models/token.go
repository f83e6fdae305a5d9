package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of a signed token: the user identity plus the
// standard registered claims (iss, iat, exp, jti).
//
// The custom fields are serialized as "id" and "email" so that a decoded
// token reads {id, email, iat, exp, ...}.
type Claims struct {
	// UserID is the identifier of the token owner.
	UserID string `json:"id"`

	// Email is the owner's email at issuance time.
	Email string `json:"email"`

	jwt.RegisteredClaims
}

// Token is an issued token together with its decoded claims.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) that is handed to the client and stored in the
// session row.
type Token struct {
	Claims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
