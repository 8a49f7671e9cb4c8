// Package article provides HTTP handlers for article-related endpoints.
// It includes handlers for listing, creating, updating, patching and deleting
// articles, plus the ownership middleware guarding the mutating routes.
package article

import (
	"time"

	"newsboard/internal/domain/entity"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID          int64     `json:"id" example:"1"`
	Title       string    `json:"title" example:"Go 1.25 リリース"`
	Body        string    `json:"body" example:"Go 1.25 がリリースされました。新機能には..."`
	Category    string    `json:"category" example:"golang"`
	SubmittedBy int64     `json:"submitted_by_user_id" example:"1"`
	CreatedAt   time.Time `json:"created_at" example:"2026-08-30T12:00:00Z"`
}

func toDTO(a *entity.Article) DTO {
	return DTO{
		ID:          a.ID,
		Title:       a.Title,
		Body:        a.Body,
		Category:    a.Category,
		SubmittedBy: a.SubmittedBy,
		CreatedAt:   a.CreatedAt,
	}
}
