// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects, Article and User, along with
// their validation rules and domain-specific errors.
package entity

import "time"

// Article field bounds.
const (
	TitleMinLen    = 5
	TitleMaxLen    = 100
	BodyMinLen     = 10
	CategoryMinLen = 3
)

// Article represents a user-submitted article in the system.
// SubmittedBy references the owning user and is assigned exactly once, at creation.
type Article struct {
	ID          int64
	Title       string
	Body        string
	Category    string
	SubmittedBy int64
	CreatedAt   time.Time
}

// ValidateTitle checks the title length bounds (5–100 characters).
func ValidateTitle(title string) *ValidationError {
	if len(title) < TitleMinLen {
		return &ValidationError{Field: "title", Message: "must be at least 5 characters long"}
	}
	if len(title) > TitleMaxLen {
		return &ValidationError{Field: "title", Message: "must be less than 100 characters"}
	}
	return nil
}

// ValidateBody checks the body minimum length (10 characters).
func ValidateBody(body string) *ValidationError {
	if len(body) < BodyMinLen {
		return &ValidationError{Field: "body", Message: "must be at least 10 characters long"}
	}
	return nil
}

// ValidateCategory checks the category minimum length (3 characters).
func ValidateCategory(category string) *ValidationError {
	if len(category) < CategoryMinLen {
		return &ValidationError{Field: "category", Message: "must be at least 3 characters"}
	}
	return nil
}

// Validate checks all mutable article fields.
// Returns every violation found, not just the first.
func (a *Article) Validate() Violations {
	var vs Violations
	if v := ValidateTitle(a.Title); v != nil {
		vs = append(vs, v)
	}
	if v := ValidateBody(a.Body); v != nil {
		vs = append(vs, v)
	}
	if v := ValidateCategory(a.Category); v != nil {
		vs = append(vs, v)
	}
	return vs
}
