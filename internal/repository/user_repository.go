package repository

import (
	"context"

	"newsboard/internal/domain/entity"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create persists a new user and fills ID and CreatedAt.
	// Returns entity.ErrDuplicate when the username or email is already taken.
	Create(ctx context.Context, user *entity.User) error

	// GetByEmail returns the user with the given email, or (nil, nil) when absent.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmailOrUsername reports whether a user with the given email
	// or username already exists.
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
}
