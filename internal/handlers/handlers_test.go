package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"resume-studio/internal/resume"
	"resume-studio/internal/store"
)

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// serve routes a single request through pattern so URL params resolve.
func serve(method, pattern, target, body string, h http.HandlerFunc) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.MethodFunc(method, pattern, h)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seededStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(resume.NewDocument(), nil)
	s.SetResume(context.Background(), resume.Resume{
		Header: resume.Header{Name: "Ada Lovelace", Email: "ada@example.com"},
		Experience: []resume.ExperienceItem{
			{ID: "e1", Title: "Engineer", Company: "Acme", Bullets: []string{"Built X", "Shipped Y"}},
		},
		Projects: []resume.ProjectItem{
			{ID: "p1", Name: "Compiler", Bullets: []string{"Wrote a parser"}},
		},
		Skills: resume.Skills{{Name: "Languages", Skills: []string{"Go"}}},
	})
	return s
}

type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(context.Context) error { return p.err }

func TestHealthHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		pingErr      error
		store        *store.Store
		wantStatus   int
		wantDatabase string
		wantVersions *int
	}{
		{name: "healthy without store", method: http.MethodGet, wantStatus: http.StatusOK, wantDatabase: "ok"},
		{name: "healthy with store", method: http.MethodGet, store: seededStore(t), wantStatus: http.StatusOK, wantDatabase: "ok", wantVersions: ptr(1)},
		{name: "database down", method: http.MethodGet, pingErr: errors.New("closed"), store: seededStore(t), wantStatus: http.StatusServiceUnavailable, wantDatabase: "error", wantVersions: ptr(1)},
		{name: "method not allowed", method: http.MethodPost, wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(fakePinger{err: tt.pingErr}, tt.store)
			req := httptest.NewRequest(tt.method, "/api/health", nil)
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("ServeHTTP() status = %v, want %v", w.Code, tt.wantStatus)
			}
			if tt.wantDatabase == "" {
				return
			}
			var resp HealthResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Checks["database"] != tt.wantDatabase {
				t.Errorf("checks.database = %q, want %q", resp.Checks["database"], tt.wantDatabase)
			}
			switch {
			case tt.wantVersions == nil && resp.Versions != nil:
				t.Errorf("versions = %d, want omitted", *resp.Versions)
			case tt.wantVersions != nil && (resp.Versions == nil || *resp.Versions != *tt.wantVersions):
				t.Errorf("versions = %v, want %d", resp.Versions, *tt.wantVersions)
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }

func TestDocumentHandler_ServeHTTP(t *testing.T) {
	h := NewDocumentHandler(seededStore(t))
	req := httptest.NewRequest(http.MethodGet, "/api/store", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("ServeHTTP() status = %v, want %v", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), `"masterData"`) || !strings.Contains(w.Body.String(), `"currentVersionId"`) {
		t.Errorf("ServeHTTP() body = %s", w.Body.String())
	}
}
