package users

import "context"

// UserRepository defines the interface for user data persistence
type UserRepository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// UserService defines the interface for account business logic
type UserService interface {
	// Register validates the request, hashes the password and creates the
	// account. Returns ErrEmailAlreadyRegistered on a duplicate email.
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)

	// Login verifies the credentials and issues a fresh access token.
	// Returns ErrInvalidCredentials on a wrong email or password.
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)

	// GetUser retrieves an account by its ID.
	GetUser(ctx context.Context, id int64) (*User, error)
}
