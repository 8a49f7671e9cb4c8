package article

import (
	"errors"
	"net/http"

	"newsboard/internal/handler/http/auth"
	"newsboard/internal/handler/http/pathutil"
	"newsboard/internal/handler/http/respond"
	artUC "newsboard/internal/usecase/article"
)

// RequireOwner only lets the submitter of an article through to the wrapped
// handler. A missing article yields 404 before any ownership comparison, so
// a caller cannot distinguish "not mine" from "does not exist" by probing.
func RequireOwner(svc *artUC.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := auth.UserIDFrom(r.Context())
			if !ok {
				respond.WriteError(w, r, respond.Unauthorized("authentication required"))
				return
			}

			id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
			if err != nil {
				respond.WriteError(w, r, respond.BadRequest("article id must be a number"))
				return
			}

			owner, err := svc.Owner(r.Context(), id)
			if err != nil {
				// 存在チェックが所有者チェックより先
				if errors.Is(err, artUC.ErrArticleNotFound) {
					respond.WriteError(w, r, respond.NotFound("article not found"))
					return
				}
				respond.WriteError(w, r, err)
				return
			}

			if owner != userID {
				respond.WriteError(w, r,
					respond.Forbidden("you are not authorized to perform this action on this article"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
