// Package user provides use cases for account registration and authentication.
package user

import "errors"

// Sentinel errors for user use case operations.
var (
	// ErrUserExists indicates that the email or username is already taken.
	ErrUserExists = errors.New("user with this email or username already exists")

	// ErrInvalidCredentials indicates a failed login attempt.
	// The same error is returned for an unknown email and a wrong password
	// so callers cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
