package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"newsboard/internal/handler/http/pathutil"
	"newsboard/internal/handler/http/respond"
	"newsboard/internal/repository"
	artUC "newsboard/internal/usecase/article"
)

type PatchHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事部分更新
// @Summary      記事部分更新
// @Description  指定された項目のみを更新します。省略された項目は変更されません。
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "記事ID"
// @Param        article body object true "更新する項目（title, body, category のいずれか）"
// @Success      200 {object} map[string]string "更新完了メッセージ"
// @Failure      400 {string} string "バリデーションエラー、または更新項目なし"
// @Failure      401 {string} string "認証が必要"
// @Failure      403 {string} string "記事の所有者ではない"
// @Failure      404 {string} string "記事が存在しない"
// @Router       /articles/{id} [patch]
func (h PatchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.WriteError(w, r, respond.BadRequest("article id must be a number"))
		return
	}

	var req struct {
		Title    *string `json:"title"`
		Body     *string `json:"body"`
		Category *string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteError(w, r, respond.BadRequest("invalid request body"))
		return
	}

	err = h.Svc.Patch(r.Context(), id, repository.ArticlePatch{
		Title:    req.Title,
		Body:     req.Body,
		Category: req.Category,
	})
	if err != nil {
		switch {
		case errors.Is(err, artUC.ErrEmptyPatch):
			respond.WriteError(w, r,
				respond.BadRequest("at least one of title, body or category is required"))
		case errors.Is(err, artUC.ErrArticleNotFound):
			respond.WriteError(w, r, respond.NotFound("article not found"))
		default:
			respond.WriteError(w, r, err)
		}
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"message": "article updated"})
}
