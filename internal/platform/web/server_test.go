package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vovakirdan/panelpop/internal/config"
	"github.com/vovakirdan/panelpop/internal/export"
)

func get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(config.DefaultPanelsConfig(), nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	rec := get(t, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestGetGridSeeded(t *testing.T) {
	tests := []string{"/grid?seed=42", "/grid/42"}

	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			rec := get(t, path)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, expected 200", rec.Code)
			}

			var doc export.Document
			if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}

			expected := export.Build(42, config.DefaultPanelsConfig())
			if doc.Seed != 42 || doc.Width != expected.Width || len(doc.Panels) != len(expected.Panels) {
				t.Fatalf("doc header = seed %d %dx%d with %d panels", doc.Seed, doc.Width, doc.Height, len(doc.Panels))
			}
			for i := range doc.Panels {
				if doc.Panels[i] != expected.Panels[i] {
					t.Fatalf("panel %d = %+v, expected %+v", i, doc.Panels[i], expected.Panels[i])
				}
			}
		})
	}
}

func TestGetGridRandomSeed(t *testing.T) {
	rec := get(t, "/grid")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}

	var doc export.Document
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if doc.Seed == 0 || len(doc.Panels) == 0 {
		t.Errorf("expected a generated grid with its seed, got seed %d", doc.Seed)
	}
}

func TestGetGridBadSeed(t *testing.T) {
	rec := get(t, "/grid?seed=abc")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, expected 400", rec.Code)
	}
}

func TestUnknownRoute(t *testing.T) {
	if rec := get(t, "/nope"); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, expected 404", rec.Code)
	}
}
