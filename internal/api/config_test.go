package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
)

func TestNewConfigStripsSchemaLinkTransformer(t *testing.T) {
	cfg := NewConfig("ConfigTest", "test")

	if len(cfg.Transformers) != 0 {
		t.Fatalf("expected no transformers, got %d", len(cfg.Transformers))
	}
	if len(cfg.OnAddOperation) != 0 {
		t.Fatalf("expected no OnAddOperation hooks, got %d", len(cfg.OnAddOperation))
	}
}

func TestNewConfigEmitsDeclaredBodyOnly(t *testing.T) {
	type Output struct {
		Body struct {
			Status string `json:"status"`
		}
	}

	router := chi.NewRouter()
	api := humachi.New(router, NewConfig("ConfigTest", "test"))
	huma.Get(api, "/status", func(_ context.Context, _ *struct{}) (*Output, error) {
		out := &Output{}
		out.Body.Status = "healthy"
		return out, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	body := strings.TrimSpace(resp.Body.String())
	if body != `{"status":"healthy"}` {
		t.Fatalf("expected exact body %q, got %q", `{"status":"healthy"}`, body)
	}
	if strings.Contains(body, "$schema") {
		t.Fatalf("response body contains $schema member: %s", body)
	}
}
