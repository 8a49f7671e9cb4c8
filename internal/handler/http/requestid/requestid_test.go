package requestid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestMiddleware_generatesID(t *testing.T) {
	var captured string
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = FromContext(r.Context())
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/articles", nil))

	if captured == "" {
		t.Fatal("request ID missing from context")
	}
	if _, err := uuid.Parse(captured); err != nil {
		t.Errorf("request ID %q is not a UUID: %v", captured, err)
	}
	if got := w.Header().Get(Header); got != captured {
		t.Errorf("response header = %q, want %q", got, captured)
	}
}

func TestMiddleware_propagatesExistingID(t *testing.T) {
	var captured string
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = FromContext(r.Context())
	}))

	r := httptest.NewRequest("GET", "/articles", nil)
	r.Header.Set(Header, "client-supplied-id")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if captured != "client-supplied-id" {
		t.Errorf("context ID = %q, want client-supplied-id", captured)
	}
	if got := w.Header().Get(Header); got != "client-supplied-id" {
		t.Errorf("response header = %q, want client-supplied-id", got)
	}
}

func TestFromContext_missing(t *testing.T) {
	if got := FromContext(context.Background()); got != "" {
		t.Errorf("FromContext() = %q, want empty", got)
	}
}
