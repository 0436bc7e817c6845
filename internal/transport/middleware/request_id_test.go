package middleware

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/heartmarshall/mindlog-backend/pkg/ctxutil"
)

var uuidRe = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

func TestRequestID_Generated(t *testing.T) {
	var seen string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ctxutil.RequestIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	RequestID(handler).ServeHTTP(rec, req)

	if !uuidRe.MatchString(seen) {
		t.Errorf("generated request id %q is not a UUID", seen)
	}
	if got := rec.Header().Get("X-Request-Id"); got != seen {
		t.Errorf("response header X-Request-Id = %q, want %q", got, seen)
	}
}

func TestRequestID_Propagated(t *testing.T) {
	var seen string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ctxutil.RequestIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "req-from-client")
	rec := httptest.NewRecorder()

	RequestID(handler).ServeHTTP(rec, req)

	if seen != "req-from-client" {
		t.Errorf("request id = %q, want %q", seen, "req-from-client")
	}
	if got := rec.Header().Get("X-Request-Id"); got != "req-from-client" {
		t.Errorf("response header X-Request-Id = %q, want %q", got, "req-from-client")
	}
}
