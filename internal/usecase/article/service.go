package article

import (
	"context"
	"errors"
	"fmt"
	"time"

	"newsboard/internal/common/pagination"
	"newsboard/internal/domain/entity"
	"newsboard/internal/repository"
)

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	Title       string
	Body        string
	Category    string
	SubmittedBy int64
}

// UpdateInput represents the input parameters for a full article replacement.
// All fields are required.
type UpdateInput struct {
	ID       int64
	Title    string
	Body     string
	Category string
}

// Service provides article management use cases.
// It handles business logic for article operations and delegates persistence to the repository.
type Service struct {
	Repo repository.ArticleRepository
}

// List retrieves a page of articles from the repository.
// Returns an error if the repository operation fails.
func (s *Service) List(ctx context.Context, params pagination.Params) ([]*entity.Article, error) {
	offset := pagination.CalculateOffset(params.Page, params.Limit)

	articles, err := s.Repo.List(ctx, offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// Get retrieves a single article by its ID.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	article, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// Owner returns the submitter user ID of the given article.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Owner(ctx context.Context, id int64) (int64, error) {
	owner, found, err := s.Repo.Owner(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("get article owner: %w", err)
	}
	if !found {
		return 0, ErrArticleNotFound
	}
	return owner, nil
}

// Create creates a new article with the provided input.
// It validates every field and reports all violations at once.
// Returns a Violations error if any input field is invalid.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	art := &entity.Article{
		Title:       in.Title,
		Body:        in.Body,
		Category:    in.Category,
		SubmittedBy: in.SubmittedBy,
		CreatedAt:   time.Now(),
	}

	if violations := art.Validate(); len(violations) > 0 {
		return nil, violations
	}

	if err := s.Repo.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return art, nil
}

// Update replaces the mutable fields of an existing article.
// Returns ErrArticleNotFound if the article does not exist.
// Returns a Violations error if any field is invalid.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Article, error) {
	art := &entity.Article{
		ID:       in.ID,
		Title:    in.Title,
		Body:     in.Body,
		Category: in.Category,
	}
	if violations := art.Validate(); len(violations) > 0 {
		return nil, violations
	}

	if err := s.Repo.Update(ctx, art); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("update article: %w", err)
	}
	return art, nil
}

// Patch applies a partial update to an existing article.
// Fields with nil values are left untouched.
// Returns ErrEmptyPatch if no field is set.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Patch(ctx context.Context, id int64, patch repository.ArticlePatch) error {
	if patch.IsEmpty() {
		return ErrEmptyPatch
	}

	var violations entity.Violations
	if patch.Title != nil {
		if v := entity.ValidateTitle(*patch.Title); v != nil {
			violations = append(violations, v)
		}
	}
	if patch.Body != nil {
		if v := entity.ValidateBody(*patch.Body); v != nil {
			violations = append(violations, v)
		}
	}
	if patch.Category != nil {
		if v := entity.ValidateCategory(*patch.Category); v != nil {
			violations = append(violations, v)
		}
	}
	if len(violations) > 0 {
		return violations
	}

	if err := s.Repo.UpdateFields(ctx, id, patch); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrArticleNotFound
		}
		return fmt.Errorf("patch article: %w", err)
	}
	return nil
}

// Delete removes an article by its ID.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrArticleNotFound
		}
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}
