package users

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"RentRate/internal/auth"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const minPasswordLength = 8

type userService struct {
	userRepo  UserRepository
	jwtSecret string
}

// NewUserService creates a new user service
func NewUserService(userRepo UserRepository, jwtSecret string) UserService {
	return &userService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

// Register validates the request, hashes the password and creates the account
func (s *userService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if err := s.validateRegisterRequest(&req); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		Email:        req.Email,
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: hash,
	}

	// Repository maps the unique constraint violation to ErrEmailAlreadyRegistered
	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return s.issueToken(created)
}

// Login verifies the credentials and issues a fresh access token
func (s *userService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if err == ErrUserNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// GetUser retrieves an account by its ID
func (s *userService) GetUser(ctx context.Context, id int64) (*User, error) {
	if id <= 0 {
		return nil, ErrUserNotFound
	}
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) issueToken(user *User) (*AuthResponse, error) {
	token, err := auth.GenerateToken(user.ID, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &AuthResponse{User: user, Token: token}, nil
}

func (s *userService) validateRegisterRequest(req *RegisterRequest) error {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if !req.TermsAccepted {
		return ErrTermsNotAccepted
	}

	if !emailRegex.MatchString(req.Email) {
		return &InvalidEmailError{Email: req.Email}
	}

	return validatePassword(req.Password)
}

// validatePassword enforces the same rules the registration form shows:
// at least 8 characters with one uppercase letter and one digit.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return &WeakPasswordError{Reason: fmt.Sprintf("at least %d characters", minPasswordLength)}
	}

	var hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper {
		return &WeakPasswordError{Reason: "an uppercase letter"}
	}
	if !hasDigit {
		return &WeakPasswordError{Reason: "a digit"}
	}

	return nil
}
