package handlers

import (
	"context"
	"net/http"
	"time"

	"resume-studio/internal/contextutil"
	"resume-studio/internal/store"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports database reachability and the document revision.
type HealthHandler struct {
	db      Pinger
	store   *store.Store
	timeout time.Duration
}

// NewHealthHandler creates a HealthHandler. s may be nil.
func NewHealthHandler(db Pinger, s *store.Store) *HealthHandler {
	return &HealthHandler{db: db, store: s, timeout: 5 * time.Second}
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
	Revision  *uint64           `json:"revision,omitempty"`
	Versions  *int              `json:"versions,omitempty"`
}

// ServeHTTP answers 200 when the database pings, 503 otherwise.
// A down database does not hide the in-memory document stats.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    map[string]string{"database": "ok"},
	}
	status := http.StatusOK

	pingCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	if err := h.db.PingContext(pingCtx); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "database health check failed", "error", err)
		resp.Status = "unhealthy"
		resp.Checks["database"] = "error"
		status = http.StatusServiceUnavailable
	}

	if h.store != nil {
		rev, n := h.store.Revision(), len(h.store.Versions())
		resp.Revision, resp.Versions = &rev, &n
	}

	writeJSON(ctx, w, status, resp)
}
