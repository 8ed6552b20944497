package handlers

import (
	"net/http"

	"resume-studio/internal/store"
)

// DocumentHandler serves the whole persisted document.
type DocumentHandler struct {
	store *store.Store
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(s *store.Store) *DocumentHandler {
	return &DocumentHandler{store: s}
}

// ServeHTTP returns a snapshot of master data, versions and the selection.
func (h *DocumentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, h.store.Snapshot())
}
