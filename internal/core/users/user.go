package users

import (
	"time"
)

// User is a registered reviewer account.
// PasswordHash is a bcrypt hash and never leaves the server.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Username     string    `json:"username,omitempty" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// RegisterRequest represents the input for creating a new account
type RegisterRequest struct {
	Email         string `json:"email"`
	Username      string `json:"username,omitempty"`
	Password      string `json:"password"`
	TermsAccepted bool   `json:"terms_accepted"`
}

// LoginRequest represents the input for authenticating an existing account
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by both register and login: the account plus a
// signed access token the client sends back as a Bearer header.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// DisplayName returns the name shown next to the user's reviews.
func (u *User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}
