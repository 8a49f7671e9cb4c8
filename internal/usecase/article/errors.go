// Package article provides use cases for managing article entities.
// It implements business logic for creating, updating, deleting, and querying articles,
// including validation and interaction with the article repository.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	// This error is typically returned when attempting to retrieve or modify
	// an article that does not exist in the repository.
	ErrArticleNotFound = errors.New("article not found")

	// ErrEmptyPatch indicates that a partial update carried no fields to change.
	ErrEmptyPatch = errors.New("no fields provided for update")
)
