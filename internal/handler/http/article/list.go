package article

import (
	"log/slog"
	"net/http"
	"time"

	"newsboard/internal/common/pagination"
	"newsboard/internal/handler/http/requestid"
	"newsboard/internal/handler/http/respond"
	artUC "newsboard/internal/usecase/article"
)

type ListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// ServeHTTP 記事一覧取得
// @Summary      記事一覧取得（ページネーション対応）
// @Description  登録されている記事をページ単位で取得します。不正なページ番号はデフォルト値にフォールバックします。
// @Tags         articles
// @Produce      json
// @Param        page   query    int  false  "ページ番号 (1-based)" default(1) minimum(1)
// @Param        limit  query    int  false  "1ページあたりの件数" default(10) minimum(1) maximum(100)
// @Success      200 {array} DTO "記事一覧"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	reqID := requestid.FromContext(ctx)
	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// 不正な値はデフォルトへフォールバック（エラーにしない）
	params := pagination.ParseQueryParams(r, h.PaginationCfg)

	articles, err := h.Svc.List(ctx, params)
	if err != nil {
		logger.Error("failed to list articles",
			"error", err.Error(),
			"page", params.Page,
			"limit", params.Limit,
			"request_id", reqID)
		respond.WriteError(w, r, err)
		return
	}

	dtos := make([]DTO, 0, len(articles))
	for _, a := range articles {
		dtos = append(dtos, toDTO(a))
	}

	logger.Info("article list request",
		"page", params.Page,
		"limit", params.Limit,
		"returned_count", len(dtos),
		"duration_ms", time.Since(startTime).Milliseconds(),
		"request_id", reqID)

	respond.JSON(w, http.StatusOK, dtos)
}
