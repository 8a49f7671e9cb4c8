package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"newsboard/internal/config"
	"newsboard/internal/domain/entity"
	"newsboard/internal/handler/http/auth"
	userUC "newsboard/internal/usecase/user"
)

/* ───────── スタブ実装 ───────── */

type stubUserRepo struct {
	data   map[int64]*entity.User
	nextID int64
}

func newUserStub() *stubUserRepo {
	return &stubUserRepo{data: map[int64]*entity.User{}, nextID: 1}
}

func (s *stubUserRepo) Create(_ context.Context, u *entity.User) error {
	u.ID = s.nextID
	s.nextID++
	s.data[u.ID] = u
	return nil
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, v := range s.data {
		if v.Email == email {
			return v, nil
		}
	}
	return nil, nil
}

func (s *stubUserRepo) ExistsByEmailOrUsername(_ context.Context, email, username string) (bool, error) {
	for _, v := range s.data {
		if v.Email == email || v.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func newMux(t *testing.T) (*http.ServeMux, *auth.TokenIssuer) {
	t.Helper()
	svc := &userUC.Service{Repo: newUserStub(), Policy: config.DefaultSecurityPolicy()}
	issuer := auth.NewTokenIssuer("0123456789abcdef0123456789abcdef", time.Hour)
	mux := http.NewServeMux()
	auth.Register(mux, svc, issuer)
	return mux, issuer
}

func post(mux *http.ServeMux, path, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest("POST", path, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	return w
}

/* ───────── 1. 登録 ───────── */

func TestRegister_success(t *testing.T) {
	mux, _ := newMux(t)

	w := post(mux, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"correct horse battery"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("Code = %d, want 201; body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Message string       `json:"message"`
		User    auth.UserDTO `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Message != "user registered" || resp.User.ID == 0 {
		t.Errorf("resp = %+v", resp)
	}
	// パスワードはレスポンスに含めない
	if strings.Contains(w.Body.String(), "password") {
		t.Errorf("response leaked password field: %s", w.Body.String())
	}
}

func TestRegister_validation(t *testing.T) {
	mux, _ := newMux(t)

	w := post(mux, "/auth/register", `{"username":"","email":"bogus","password":"x"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Code = %d, want 400; body=%s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	// 全項目の違反が1レスポンスに載ること
	for _, field := range []string{"username", "email", "password"} {
		if !strings.Contains(body, field) {
			t.Errorf("body %q missing %q violation", body, field)
		}
	}
}

func TestRegister_duplicate(t *testing.T) {
	mux, _ := newMux(t)

	first := post(mux, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"correct horse battery"}`)
	if first.Code != http.StatusCreated {
		t.Fatalf("seed Code = %d", first.Code)
	}

	second := post(mux, "/auth/register",
		`{"username":"alice","email":"other@example.com","password":"correct horse battery"}`)
	if second.Code != http.StatusConflict {
		t.Fatalf("Code = %d, want 409; body=%s", second.Code, second.Body.String())
	}
	if !strings.Contains(second.Body.String(), "already exists") {
		t.Errorf("body = %s", second.Body.String())
	}
}

func TestRegister_malformedJSON(t *testing.T) {
	mux, _ := newMux(t)

	w := post(mux, "/auth/register", `{"username":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Code = %d, want 400", w.Code)
	}
}

/* ───────── 2. ログイン ───────── */

func TestLogin_success(t *testing.T) {
	mux, issuer := newMux(t)

	post(mux, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"correct horse battery"}`)

	w := post(mux, "/auth/login",
		`{"email":"alice@example.com","password":"correct horse battery"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Code = %d, want 200; body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Message string       `json:"message"`
		User    auth.UserDTO `json:"user"`
		Token   string       `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Message != "login successful" || resp.Token == "" {
		t.Fatalf("resp = %+v", resp)
	}

	// 発行されたトークンがそのまま検証を通ること
	userID, err := issuer.Verify(resp.Token)
	if err != nil || userID != resp.User.ID {
		t.Fatalf("issued token does not verify: id=%d err=%v", userID, err)
	}
}

// 未知のメールと誤ったパスワードでレスポンスが同一であること
func TestLogin_indistinguishableFailures(t *testing.T) {
	mux, _ := newMux(t)

	post(mux, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"correct horse battery"}`)

	unknown := post(mux, "/auth/login",
		`{"email":"nobody@example.com","password":"correct horse battery"}`)
	wrongPw := post(mux, "/auth/login",
		`{"email":"alice@example.com","password":"totally wrong password"}`)

	if unknown.Code != http.StatusUnauthorized || wrongPw.Code != http.StatusUnauthorized {
		t.Fatalf("codes = %d/%d, want 401/401", unknown.Code, wrongPw.Code)
	}
	if unknown.Body.String() != wrongPw.Body.String() {
		t.Fatalf("bodies differ:\n%s\n%s", unknown.Body.String(), wrongPw.Body.String())
	}
}

/* ───────── 3. /protected ───────── */

func TestProtected_requiresToken(t *testing.T) {
	mux, _ := newMux(t)

	r := httptest.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Code = %d, want 401", w.Code)
	}
}

func TestProtected_withToken(t *testing.T) {
	mux, issuer := newMux(t)

	token, err := issuer.Issue(1)
	if err != nil {
		t.Fatalf("Issue err=%v", err)
	}

	r := httptest.NewRequest("GET", "/protected", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("Code = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "you have access to this protected route") {
		t.Errorf("body = %s", w.Body.String())
	}
}
