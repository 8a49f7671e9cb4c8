package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"newsboard/internal/handler/http/pathutil"
	"newsboard/internal/handler/http/respond"
	artUC "newsboard/internal/usecase/article"
)

type UpdateHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事更新
// @Summary      記事更新（全項目）
// @Description  既存の記事の全項目を置き換えます
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "記事ID"
// @Param        article body object true "更新する記事情報"
// @Success      200 {object} DTO "更新後の記事"
// @Failure      400 {string} string "バリデーションエラー"
// @Failure      401 {string} string "認証が必要"
// @Failure      403 {string} string "記事の所有者ではない"
// @Failure      404 {string} string "記事が存在しない"
// @Router       /articles/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.WriteError(w, r, respond.BadRequest("article id must be a number"))
		return
	}

	var req struct {
		Title    string `json:"title"`
		Body     string `json:"body"`
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteError(w, r, respond.BadRequest("invalid request body"))
		return
	}

	art, err := h.Svc.Update(r.Context(), artUC.UpdateInput{
		ID:       id,
		Title:    req.Title,
		Body:     req.Body,
		Category: req.Category,
	})
	if err != nil {
		if errors.Is(err, artUC.ErrArticleNotFound) {
			respond.WriteError(w, r, respond.NotFound("article not found"))
			return
		}
		respond.WriteError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(art))
}
