package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"resume-studio/internal/resume"
	"resume-studio/internal/store"
)

// VersionHandler serves version CRUD and selection.
type VersionHandler struct {
	store *store.Store
}

// NewVersionHandler creates a new VersionHandler.
func NewVersionHandler(s *store.Store) *VersionHandler {
	return &VersionHandler{store: s}
}

// VersionRequest is the body for creating and duplicating versions.
type VersionRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// VersionPatchRequest is the body for renaming a version. A nil description
// leaves it unchanged.
type VersionPatchRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// VersionListResponse lists versions with the current selection.
type VersionListResponse struct {
	Versions         []resume.Version `json:"versions"`
	CurrentVersionID string           `json:"currentVersionId,omitempty"`
}

// List returns every version in order.
func (h *VersionHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, VersionListResponse{
		Versions:         h.store.Versions(),
		CurrentVersionID: h.store.CurrentVersionID(),
	})
}

// Create adds an empty version and selects it.
func (h *VersionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req VersionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}
	id := h.store.CreateVersion(r.Context(), req.Name, req.Description)
	h.writeVersion(w, r, http.StatusCreated, id)
}

// Get returns one version.
func (h *VersionHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.writeVersion(w, r, http.StatusOK, chi.URLParam(r, "id"))
}

// Update renames a version.
func (h *VersionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req VersionPatchRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}
	id := chi.URLParam(r, "id")
	h.store.RenameVersion(r.Context(), id, req.Name, req.Description)
	h.writeVersion(w, r, http.StatusOK, id)
}

// Delete removes a version. Unknown ids are accepted.
func (h *VersionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.store.DeleteVersion(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// Duplicate copies a version under a new name.
func (h *VersionHandler) Duplicate(w http.ResponseWriter, r *http.Request) {
	var req VersionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}
	id, ok := h.store.DuplicateVersion(r.Context(), chi.URLParam(r, "id"), req.Name)
	if !ok {
		writeError(w, http.StatusNotFound, "Version not found")
		return
	}
	h.writeVersion(w, r, http.StatusCreated, id)
}

// Switch selects a version. Unknown ids leave the selection unchanged.
func (h *VersionHandler) Switch(w http.ResponseWriter, r *http.Request) {
	h.store.SwitchVersion(r.Context(), chi.URLParam(r, "id"))
	writeJSON(r.Context(), w, http.StatusOK, VersionListResponse{
		Versions:         h.store.Versions(),
		CurrentVersionID: h.store.CurrentVersionID(),
	})
}

func (h *VersionHandler) writeVersion(w http.ResponseWriter, r *http.Request, statusCode int, id string) {
	v, ok := h.store.Version(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Version not found")
		return
	}
	writeJSON(r.Context(), w, statusCode, v)
}
