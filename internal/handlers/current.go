package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"resume-studio/internal/resume"
	"resume-studio/internal/store"
)

// CurrentHandler serves content edits on the current version and the
// sync/promote operations between its items and master data.
type CurrentHandler struct {
	store *store.Store
}

// NewCurrentHandler creates a new CurrentHandler.
func NewCurrentHandler(s *store.Store) *CurrentHandler {
	return &CurrentHandler{store: s}
}

// AddFromMasterRequest names the master item to copy into the current version.
type AddFromMasterRequest struct {
	MasterID string `json:"masterId"`
}

// ReorderRequest lists item ids in their new order.
type ReorderRequest struct {
	IDs []string `json:"ids"`
}

// AddFromMaster links a copy of a master item into the current version.
func (h *CurrentHandler) AddFromMaster(w http.ResponseWriter, r *http.Request) {
	section, ok := sectionParam(w, r)
	if !ok {
		return
	}
	var req AddFromMasterRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.MasterID == "" {
		writeError(w, http.StatusBadRequest, "masterId is required")
		return
	}

	id, ok := h.store.AddItemToCurrentVersion(r.Context(), section, req.MasterID)
	if !ok {
		writeError(w, http.StatusNotFound, "Master item or current version not found")
		return
	}
	writeJSON(r.Context(), w, http.StatusCreated, IDResponse{ID: id})
}

// AddNew creates an item in master data and links a copy into the current
// version. It refuses to run without a current version so master data is
// not changed on its own.
func (h *CurrentHandler) AddNew(w http.ResponseWriter, r *http.Request) {
	section, ok := sectionParam(w, r)
	if !ok {
		return
	}
	if h.store.CurrentVersionID() == "" {
		writeError(w, http.StatusConflict, "No current version")
		return
	}

	var id string
	switch section {
	case resume.SectionEducation:
		id, ok = addNew(w, r, h.store.AddNewEducationToCurrentVersion)
	case resume.SectionExperience:
		id, ok = addNew(w, r, h.store.AddNewExperienceToCurrentVersion)
	case resume.SectionProjects:
		id, ok = addNew(w, r, h.store.AddNewProjectToCurrentVersion)
	case resume.SectionSkills:
		id, ok = addNew(w, r, h.store.AddNewSkillCategoryToCurrentVersion)
	}
	if !ok {
		return
	}
	writeJSON(r.Context(), w, http.StatusCreated, IDResponse{ID: id})
}

// Replace swaps the whole section of the current version for the body list.
func (h *CurrentHandler) Replace(w http.ResponseWriter, r *http.Request) {
	section, ok := sectionParam(w, r)
	if !ok {
		return
	}

	switch section {
	case resume.SectionEducation:
		ok = replaceItems(w, r, h.store.UpdateCurrentVersionEducation)
	case resume.SectionExperience:
		ok = replaceItems(w, r, h.store.UpdateCurrentVersionExperience)
	case resume.SectionProjects:
		ok = replaceItems(w, r, h.store.UpdateCurrentVersionProjects)
	case resume.SectionSkills:
		ok = replaceItems(w, r, h.store.UpdateCurrentVersionSkillCategories)
	}
	if !ok {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Reorder rebuilds the section in the order given by the body ids.
func (h *CurrentHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	section, ok := sectionParam(w, r)
	if !ok {
		return
	}
	var req ReorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.store.ReorderCurrentVersionItems(r.Context(), section, req.IDs)
	w.WriteHeader(http.StatusNoContent)
}

// Remove drops an item from the current version.
func (h *CurrentHandler) Remove(w http.ResponseWriter, r *http.Request) {
	section, ok := sectionParam(w, r)
	if !ok {
		return
	}
	h.store.RemoveItemFromCurrentVersion(r.Context(), section, chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// Status reports how an item relates to its master.
func (h *CurrentHandler) Status(w http.ResponseWriter, r *http.Request) {
	section, ok := sectionParam(w, r)
	if !ok {
		return
	}
	status, ok := h.store.ItemStatus(section, chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Item not found")
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, status)
}

// Sync overwrites an item with its master's content.
func (h *CurrentHandler) Sync(w http.ResponseWriter, r *http.Request) {
	section, ok := sectionParam(w, r)
	if !ok {
		return
	}
	h.store.SyncItemFromMaster(r.Context(), section, chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// Promote copies an item's content onto its master.
func (h *CurrentHandler) Promote(w http.ResponseWriter, r *http.Request) {
	section, ok := sectionParam(w, r)
	if !ok {
		return
	}
	h.store.PromoteToMaster(r.Context(), section, chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func addNew[T any](w http.ResponseWriter, r *http.Request, add func(context.Context, T) (string, bool)) (string, bool) {
	var item T
	if !decodeJSON(w, r, &item) {
		return "", false
	}
	id, ok := add(r.Context(), item)
	if !ok {
		writeError(w, http.StatusConflict, "No current version")
		return "", false
	}
	return id, true
}

func replaceItems[T any](w http.ResponseWriter, r *http.Request, replace func(context.Context, []T)) bool {
	var items []T
	if !decodeJSON(w, r, &items) {
		return false
	}
	replace(r.Context(), items)
	return true
}
