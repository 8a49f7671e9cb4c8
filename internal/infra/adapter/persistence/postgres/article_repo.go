// Package postgres implements the repository interfaces on PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"newsboard/internal/domain/entity"
	"newsboard/internal/repository"
)

type ArticleRepo struct {
	db *sql.DB
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func (repo *ArticleRepo) List(ctx context.Context, offset, limit int) ([]*entity.Article, error) {
	const query = `
SELECT id, title, body, category, submitted_by_user_id, created_at
FROM articles
ORDER BY id
LIMIT $1 OFFSET $2`
	rows, err := repo.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, limit)
	for rows.Next() {
		var article entity.Article
		if err := rows.Scan(&article.ID, &article.Title, &article.Body,
			&article.Category, &article.SubmittedBy, &article.CreatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		articles = append(articles, &article)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	const query = `
SELECT id, title, body, category, submitted_by_user_id, created_at
FROM articles
WHERE id = $1
LIMIT 1`
	var article entity.Article
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&article.ID, &article.Title, &article.Body, &article.Category,
			&article.SubmittedBy, &article.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &article, nil
}

func (repo *ArticleRepo) Owner(ctx context.Context, id int64) (int64, bool, error) {
	const query = `SELECT submitted_by_user_id FROM articles WHERE id = $1 LIMIT 1`
	var owner int64
	err := repo.db.QueryRowContext(ctx, query, id).Scan(&owner)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("Owner: %w", err)
	}
	return owner, true, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	const query = `
INSERT INTO articles
	   (title, body, category, submitted_by_user_id)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query,
		article.Title, article.Body, article.Category, article.SubmittedBy,
	).Scan(&article.ID, &article.CreatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	const query = `
UPDATE articles SET
       title    = $1,
       body     = $2,
       category = $3
WHERE id = $4
RETURNING submitted_by_user_id, created_at`
	err := repo.db.QueryRowContext(ctx, query,
		article.Title, article.Body, article.Category, article.ID,
	).Scan(&article.SubmittedBy, &article.CreatedAt)
	if err == sql.ErrNoRows {
		return entity.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	return nil
}

// UpdateFields applies a partial update built from fixed column literals.
// Values travel as positional parameters only.
func (repo *ArticleRepo) UpdateFields(ctx context.Context, id int64, patch repository.ArticlePatch) error {
	if patch.IsEmpty() {
		return entity.ErrInvalidInput
	}

	setClauses := make([]string, 0, 3)
	args := make([]any, 0, 4)
	if patch.Title != nil {
		args = append(args, *patch.Title)
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", len(args)))
	}
	if patch.Body != nil {
		args = append(args, *patch.Body)
		setClauses = append(setClauses, fmt.Sprintf("body = $%d", len(args)))
	}
	if patch.Category != nil {
		args = append(args, *patch.Category)
		setClauses = append(setClauses, fmt.Sprintf("category = $%d", len(args)))
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE articles SET %s WHERE id = $%d",
		strings.Join(setClauses, ", "), len(args))

	res, err := repo.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("UpdateFields: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM articles WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrNotFound
	}
	return nil
}
