package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"newsboard/internal/handler/http/requestid"
	"newsboard/internal/handler/http/respond"
	userUC "newsboard/internal/usecase/user"
)

type RegisterHandler struct{ Svc *userUC.Service }

// ServeHTTP ユーザー登録
// @Summary      ユーザー登録
// @Description  ユーザー名・メールアドレス・パスワードで新規アカウントを作成します
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body registerRequest true "登録情報"
// @Success      201 {object} registerResponse "登録済みユーザー"
// @Failure      400 {string} string "バリデーションエラー"
// @Failure      409 {string} string "メールアドレスまたはユーザー名が登録済み"
// @Router       /auth/register [post]
func (h RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With(slog.String("request_id", requestid.FromContext(r.Context())))

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteError(w, r, respond.BadRequest("invalid request body"))
		return
	}

	u, err := h.Svc.Register(r.Context(), userUC.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, userUC.ErrUserExists) {
			respond.WriteError(w, r, respond.Conflict(err.Error()))
			return
		}
		respond.WriteError(w, r, err)
		return
	}

	logger.Info("user registered",
		slog.Int64("user_id", u.ID),
		slog.String("username", u.Username))

	respond.JSON(w, http.StatusCreated, registerResponse{
		Message: "user registered",
		User:    UserDTO{ID: u.ID, Username: u.Username, Email: u.Email},
	})
}

type LoginHandler struct {
	Svc    *userUC.Service
	Issuer *TokenIssuer
}

// ServeHTTP ログイン
// @Summary      ログイン
// @Description  メールアドレスとパスワードで認証し、JWT トークンを発行します
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body loginRequest true "ログイン情報"
// @Success      200 {object} loginResponse "JWT トークン"
// @Failure      400 {string} string "リクエストが不正"
// @Failure      401 {string} string "認証失敗"
// @Router       /auth/login [post]
func (h LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger := slog.With(slog.String("request_id", requestid.FromContext(r.Context())))

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteError(w, r, respond.BadRequest("invalid request body"))
		return
	}

	u, err := h.Svc.Login(r.Context(), userUC.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, userUC.ErrInvalidCredentials) {
			logger.Warn("authentication failed",
				slog.String("reason", "invalid_credentials"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			respond.WriteError(w, r, respond.Unauthorized(err.Error()))
			return
		}
		respond.WriteError(w, r, err)
		return
	}

	token, err := h.Issuer.Issue(u.ID)
	if err != nil {
		logger.Error("token generation failed",
			slog.String("error", err.Error()),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		respond.WriteError(w, r, err)
		return
	}

	logger.Info("authentication successful",
		slog.Int64("user_id", u.ID),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))

	respond.JSON(w, http.StatusOK, loginResponse{
		Message: "login successful",
		User:    UserDTO{ID: u.ID, Username: u.Username, Email: u.Email},
		Token:   token,
	})
}

// ProtectedHandler answers a fixed message for authenticated callers.
// It exists to exercise the authentication middleware end to end.
//
// @Summary      認証確認用エンドポイント
// @Description  有効なトークンを持つ場合のみアクセスできます
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} map[string]string "アクセス許可"
// @Failure      401 {string} string "認証が必要"
// @Router       /protected [get]
func ProtectedHandler(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{
		"message": "you have access to this protected route",
	})
}
