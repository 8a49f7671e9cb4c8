package article

import (
	"errors"
	"net/http"

	"newsboard/internal/handler/http/pathutil"
	"newsboard/internal/handler/http/respond"
	artUC "newsboard/internal/usecase/article"
)

type GetHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事詳細取得
// @Summary      記事詳細取得
// @Description  指定されたIDの記事を取得します
// @Tags         articles
// @Produce      json
// @Param        id path int true "記事ID"
// @Success      200 {object} DTO "記事詳細"
// @Failure      400 {string} string "記事IDが不正"
// @Failure      404 {string} string "記事が存在しない"
// @Router       /articles/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.WriteError(w, r, respond.BadRequest("article id must be a number"))
		return
	}

	article, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, artUC.ErrArticleNotFound) {
			respond.WriteError(w, r, respond.NotFound("article not found"))
			return
		}
		respond.WriteError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(article))
}
