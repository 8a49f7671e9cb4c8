package article

import (
	"log/slog"
	"net/http"

	"newsboard/internal/common/pagination"
	"newsboard/internal/handler/http/auth"
	artUC "newsboard/internal/usecase/article"
)

// Register registers all article-related HTTP handlers with the given mux.
// Reads are public; create requires authentication; update, patch and delete
// additionally require ownership of the article.
func Register(mux *http.ServeMux, svc *artUC.Service, issuer *auth.TokenIssuer, paginationCfg pagination.Config, logger *slog.Logger) {
	authn := auth.Authenticate(issuer)
	owner := RequireOwner(svc)

	mux.Handle("GET    /articles", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET    /articles/", GetHandler{Svc: svc})

	mux.Handle("POST   /articles", authn(CreateHandler{Svc: svc}))
	mux.Handle("PUT    /articles/", authn(owner(UpdateHandler{Svc: svc})))
	mux.Handle("PATCH  /articles/", authn(owner(PatchHandler{Svc: svc})))
	mux.Handle("DELETE /articles/", authn(owner(DeleteHandler{Svc: svc})))
}
