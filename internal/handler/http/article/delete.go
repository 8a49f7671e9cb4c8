package article

import (
	"errors"
	"net/http"

	"newsboard/internal/handler/http/pathutil"
	"newsboard/internal/handler/http/respond"
	artUC "newsboard/internal/usecase/article"
)

type DeleteHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事削除
// @Summary      記事削除
// @Description  記事を削除します
// @Tags         articles
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "記事ID"
// @Success      200 {object} map[string]string "削除完了メッセージ"
// @Failure      400 {string} string "記事IDが不正"
// @Failure      401 {string} string "認証が必要"
// @Failure      403 {string} string "記事の所有者ではない"
// @Failure      404 {string} string "記事が存在しない"
// @Router       /articles/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.WriteError(w, r, respond.BadRequest("article id must be a number"))
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, artUC.ErrArticleNotFound) {
			respond.WriteError(w, r, respond.NotFound("article not found"))
			return
		}
		respond.WriteError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"message": "article deleted"})
}
