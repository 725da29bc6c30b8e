package users

import (
	"errors"
	"fmt"
)

// Sentinel errors for common user operations
var (
	// ErrUserNotFound is returned when a user lookup finds no matching record
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyRegistered is returned when registering with an email that
	// already belongs to another account
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrInvalidCredentials is returned on login with a wrong email or password.
	// Deliberately does not reveal which of the two was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTermsNotAccepted is returned when registration is attempted without
	// accepting the terms and conditions
	ErrTermsNotAccepted = errors.New("you must accept the terms and conditions")
)

type InvalidEmailError struct {
	Email string
}

func (e *InvalidEmailError) Error() string {
	return fmt.Sprintf("invalid email format: %q", e.Email)
}

type WeakPasswordError struct {
	Reason string
}

func (e *WeakPasswordError) Error() string {
	return fmt.Sprintf("password must contain %s", e.Reason)
}
