// Package repository defines persistence interfaces for the domain entities.
// Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"newsboard/internal/domain/entity"
)

// ArticlePatch enumerates the optional fields of a partial article update.
// A nil field is left untouched; only these three fields are ever settable
// after creation.
type ArticlePatch struct {
	Title    *string
	Body     *string
	Category *string
}

// IsEmpty reports whether the patch supplies no fields at all.
func (p ArticlePatch) IsEmpty() bool {
	return p.Title == nil && p.Body == nil && p.Category == nil
}

// ArticleRepository defines persistence operations for articles.
type ArticleRepository interface {
	// List returns a page of articles in storage order.
	List(ctx context.Context, offset, limit int) ([]*entity.Article, error)

	// Get returns the article with the given id, or (nil, nil) when absent.
	Get(ctx context.Context, id int64) (*entity.Article, error)

	// Owner returns the owning user id of the article.
	// The second result is false when the article does not exist.
	Owner(ctx context.Context, id int64) (int64, bool, error)

	// Create persists a new article and fills ID and CreatedAt.
	Create(ctx context.Context, article *entity.Article) error

	// Update replaces title, body and category in a single statement and
	// fills SubmittedBy and CreatedAt from the stored row.
	// Returns entity.ErrNotFound when the article does not exist.
	Update(ctx context.Context, article *entity.Article) error

	// UpdateFields applies a partial update built from the supplied fields only.
	// Returns entity.ErrInvalidInput for an empty patch and entity.ErrNotFound
	// when the article does not exist.
	UpdateFields(ctx context.Context, id int64, patch ArticlePatch) error

	// Delete removes the article.
	// Returns entity.ErrNotFound when the article does not exist.
	Delete(ctx context.Context, id int64) error
}
