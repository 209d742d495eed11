package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestVaryAddsAcceptHeader(t *testing.T) {
	h := Vary()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Vary"); got != "Accept" {
		t.Fatalf("expected Vary: Accept, got %q", got)
	}
}

func TestVaryPreservesExistingValues(t *testing.T) {
	h := Vary()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Origin")
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	h.ServeHTTP(rec, req)

	values := rec.Header().Values("Vary")
	if len(values) != 2 {
		t.Fatalf("expected two Vary values, got %v", values)
	}
	if values[0] != "Accept" || values[1] != "Origin" {
		t.Fatalf("unexpected Vary values: %v", values)
	}
}
