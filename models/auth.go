package models

// SignupRequest is the body of POST /api/auth/sign-up.
type SignupRequest struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is returned by a successful signup or login: the user without
// its password hash and the freshly issued token.
type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
