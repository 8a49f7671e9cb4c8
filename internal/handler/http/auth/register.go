package auth

import (
	"net/http"

	userUC "newsboard/internal/usecase/user"
)

// Register registers the authentication endpoints with the given mux.
// The /protected probe route is guarded by the authentication middleware.
func Register(mux *http.ServeMux, svc *userUC.Service, issuer *TokenIssuer) {
	mux.Handle("POST /auth/register", RegisterHandler{Svc: svc})
	mux.Handle("POST /auth/login", LoginHandler{Svc: svc, Issuer: issuer})
	mux.Handle("GET /protected", Authenticate(issuer)(http.HandlerFunc(ProtectedHandler)))
}
