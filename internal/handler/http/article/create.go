package article

import (
	"encoding/json"
	"net/http"

	"newsboard/internal/handler/http/auth"
	"newsboard/internal/handler/http/respond"
	artUC "newsboard/internal/usecase/article"
)

type CreateHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事作成
// @Summary      記事作成
// @Description  新しい記事を作成します。投稿者は認証済みユーザーに固定されます。
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        article body object true "記事情報"
// @Success      201 {object} DTO "作成された記事"
// @Failure      400 {string} string "バリデーションエラー"
// @Failure      401 {string} string "認証が必要"
// @Router       /articles [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// 投稿者はトークン由来のIDのみ。ボディの値は受け付けない
	userID, ok := auth.UserIDFrom(r.Context())
	if !ok {
		respond.WriteError(w, r, respond.Unauthorized("authentication required"))
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

	art, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		Title:       req.Title,
		Body:        req.Body,
		Category:    req.Category,
		SubmittedBy: userID,
	})
	if err != nil {
		respond.WriteError(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toDTO(art))
}
