package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"newsboard/internal/handler/http/requestid"
	"newsboard/internal/handler/http/respond"
)

// Authenticate requires a valid bearer token on every request it wraps.
// Missing, malformed, expired or tampered tokens are rejected with 401
// before the wrapped handler runs. On success the user ID travels in the
// request context.
func Authenticate(issuer *TokenIssuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const prefix = "Bearer "
			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, prefix) {
				respond.WriteError(w, r, respond.Unauthorized("authentication token missing or malformed"))
				return
			}

			userID, err := issuer.Verify(strings.TrimPrefix(authz, prefix))
			if err != nil {
				slog.Warn("token rejected",
					slog.String("request_id", requestid.FromContext(r.Context())),
					slog.String("reason", err.Error()))
				respond.WriteError(w, r, respond.Unauthorized("invalid or expired token"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}
