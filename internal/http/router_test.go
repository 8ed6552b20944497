package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"resume-studio/internal/handlers"
	"resume-studio/internal/resume"
	"resume-studio/internal/service/mocks"
	"resume-studio/internal/store"
)

type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(context.Context) error { return p.err }

func newTestRouter(t *testing.T) (http.Handler, *store.Store) {
	t.Helper()
	ctrl := gomock.NewController(t)

	s := store.New(resume.NewDocument(), nil)
	deps := &Deps{
		Store:              s,
		DB:                 fakePinger{},
		ParseService:       mocks.NewMockParseService(ctrl),
		ImprovementService: mocks.NewMockImprovementService(ctrl),
	}
	return NewRouter(deps), s
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestNewRouter(t *testing.T) {
	router, _ := newTestRouter(t)

	if router == nil {
		t.Fatal("NewRouter() returned nil")
	}
}

func TestRouter_Routes(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{name: "GET root redirects to preview", method: http.MethodGet, path: "/", wantStatus: http.StatusFound},
		{name: "GET /api/health", method: http.MethodGet, path: "/api/health", wantStatus: http.StatusOK},
		{name: "GET /api/store", method: http.MethodGet, path: "/api/store", wantStatus: http.StatusOK},
		{name: "GET /api/resume without version", method: http.MethodGet, path: "/api/resume", wantStatus: http.StatusNotFound},
		{name: "PUT /api/resume invalid body", method: http.MethodPut, path: "/api/resume", body: "invalid json", wantStatus: http.StatusBadRequest},
		{name: "GET /api/versions", method: http.MethodGet, path: "/api/versions", wantStatus: http.StatusOK},
		{name: "GET unknown version", method: http.MethodGet, path: "/api/versions/missing", wantStatus: http.StatusNotFound},
		{name: "GET /api/master", method: http.MethodGet, path: "/api/master", wantStatus: http.StatusOK},
		{name: "POST unknown master section", method: http.MethodPost, path: "/api/master/hobbies", body: "{}", wantStatus: http.StatusBadRequest},
		{name: "DELETE unknown current item", method: http.MethodDelete, path: "/api/current/experience/missing", wantStatus: http.StatusNoContent},
		{name: "GET /api/health method not allowed", method: http.MethodPost, path: "/api/health", wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, tt.method, tt.path, tt.body)

			if w.Code != tt.wantStatus {
				t.Errorf("Router %s %s status = %v, want %v", tt.method, tt.path, w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRouter_HealthUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := NewRouter(&Deps{
		Store:              store.New(resume.NewDocument(), nil),
		DB:                 fakePinger{err: errors.New("database is closed")},
		ParseService:       mocks.NewMockParseService(ctrl),
		ImprovementService: mocks.NewMockImprovementService(ctrl),
	})

	w := do(t, router, http.MethodGet, "/api/health", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("GET /api/health status = %v, want %v", w.Code, http.StatusServiceUnavailable)
	}
}

func TestRouter_VersionWorkflow(t *testing.T) {
	router, s := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/api/versions", `{"name":"Backend"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /api/versions status = %v, want %v", w.Code, http.StatusCreated)
	}
	var created resume.Version
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("decode version: %v", err)
	}

	w = do(t, router, http.MethodPost, "/api/master/experience", `{"title":"Engineer","company":"Acme","bullets":["Built X"]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /api/master/experience status = %v, want %v", w.Code, http.StatusCreated)
	}
	var masterID handlers.IDResponse
	_ = json.NewDecoder(w.Body).Decode(&masterID)

	w = do(t, router, http.MethodPost, "/api/current/experience", `{"masterId":"`+masterID.ID+`"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /api/current/experience status = %v, want %v", w.Code, http.StatusCreated)
	}
	var copyID handlers.IDResponse
	_ = json.NewDecoder(w.Body).Decode(&copyID)

	w = do(t, router, http.MethodPatch, "/api/master/experience/"+masterID.ID, `{"title":"Senior Engineer"}`)
	if w.Code != http.StatusNoContent {
		t.Fatalf("PATCH master status = %v, want %v", w.Code, http.StatusNoContent)
	}

	v, _ := s.CurrentVersion()
	if len(v.Experience) != 1 || v.Experience[0].Title != "Senior Engineer" {
		t.Errorf("master edit did not propagate: %+v", v.Experience)
	}

	w = do(t, router, http.MethodGet, "/api/current/experience/"+copyID.ID+"/status", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET status status = %v, want %v", w.Code, http.StatusOK)
	}
	var status store.ItemStatus
	_ = json.NewDecoder(w.Body).Decode(&status)
	if !status.HasMaster || status.Modified {
		t.Errorf("status = %+v, want linked and unmodified", status)
	}

	w = do(t, router, http.MethodGet, "/api/resume/markdown", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Senior Engineer") {
		t.Errorf("GET markdown = %v %q", w.Code, w.Body.String())
	}

	w = do(t, router, http.MethodPost, "/api/versions/"+created.ID+"/duplicate", `{"name":"Frontend"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST duplicate status = %v, want %v", w.Code, http.StatusCreated)
	}
	if got := len(s.Versions()); got != 2 {
		t.Errorf("versions = %d, want 2", got)
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/versions", bytes.NewReader(nil))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	// Check CORS headers are present
	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("Router should apply CORS middleware")
	}
}

func TestRouter_Preflight(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/current/experience/order", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("OPTIONS status = %v, want %v", w.Code, http.StatusNoContent)
	}
}
