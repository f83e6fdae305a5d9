package models

import "time"

// User is an account of the chat application.
//
// Password holds the bcrypt hash of the user's password. It is never
// serialized to JSON, so any User value written to a response is safe to
// expose as is.
type User struct {
	// ID is the unique identifier of the user (UUIDv7 string).
	ID string `json:"id"`

	// Fullname is the display name of the user, trimmed on signup.
	Fullname string `json:"fullname"`

	// Email is the login identifier. Stored trimmed and lowercased;
	// uniqueness is enforced by the users_email_key index.
	Email string `json:"email"`

	// Password is the salted bcrypt hash. Excluded from JSON.
	Password string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Sanitized returns a copy of u with the password hash cleared.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// Identity is the minimal view of an authenticated user attached to the
// request context by the auth middleware.
type Identity struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Fullname string `json:"fullname"`
}

// IdentityOf builds an [Identity] from a user record.
func IdentityOf(u User) Identity {
	return Identity{
		ID:       u.ID,
		Email:    u.Email,
		Fullname: u.Fullname,
	}
}
