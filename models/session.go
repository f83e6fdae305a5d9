package models

import "time"

// Session is the server-side record that makes a token revocable before its
// natural expiry. A token is accepted only while a session row holding the
// exact same token string exists and has not expired.
type Session struct {
	ID string `json:"id"`

	// UserID references the owning [User].
	UserID string `json:"userId"`

	// Token is the signed token string, unique across all sessions.
	Token string `json:"-"`

	// IPAddress and UserAgent describe the client that opened the session.
	// Both are optional.
	IPAddress *string `json:"ipAddress,omitempty"`
	UserAgent *string `json:"userAgent,omitempty"`

	// ExpiresAt is the absolute expiry of the session.
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

// IsExpired reports whether the session is no longer valid at the given time.
func (s Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// ClientMetadata describes the client a request came from.
// Empty fields are stored as NULL.
type ClientMetadata struct {
	IPAddress string
	UserAgent string
}
