package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"RentRate/internal/core/users"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.UserRepository {
	return &postgresUserRepo{db: db}
}

// Create inserts a new account into the users table
func (r *postgresUserRepo) Create(ctx context.Context, user *users.User) (*users.User, error) {
	query := `
		INSERT INTO users (email, username, password_hash)
		VALUES ($1, NULLIF($2, ''), $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, user.Email, user.Username, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") && strings.Contains(err.Error(), "users_email_key") {
			return nil, users.ErrEmailAlreadyRegistered
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetByID retrieves an account by its ID
func (r *postgresUserRepo) GetByID(ctx context.Context, id int64) (*users.User, error) {
	return r.get(ctx, `SELECT id, email, username, password_hash, created_at FROM users WHERE id = $1`, id)
}

// GetByEmail retrieves an account by its email address
func (r *postgresUserRepo) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	return r.get(ctx, `SELECT id, email, username, password_hash, created_at FROM users WHERE email = $1`, email)
}

func (r *postgresUserRepo) get(ctx context.Context, query string, arg interface{}) (*users.User, error) {
	user := &users.User{}
	var username sql.NullString

	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&user.ID, &user.Email, &username, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.Username = username.String
	return user, nil
}
