package entity

import (
	"net/mail"
	"time"
)

// User represents a registered account.
// PasswordHash holds the bcrypt hash of the credential; the plaintext
// password is never stored.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// ValidateUsername checks that the username is non-empty.
func ValidateUsername(username string) *ValidationError {
	if username == "" {
		return &ValidationError{Field: "username", Message: "cannot be empty"}
	}
	return nil
}

// ValidateEmail checks that the email is a parseable address.
func ValidateEmail(email string) *ValidationError {
	if email == "" {
		return &ValidationError{Field: "email", Message: "cannot be empty"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return &ValidationError{Field: "email", Message: "invalid email address"}
	}
	return nil
}
