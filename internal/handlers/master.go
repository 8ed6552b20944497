package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"resume-studio/internal/resume"
	"resume-studio/internal/store"
)

// MasterHandler serves master data CRUD.
type MasterHandler struct {
	store *store.Store
	newID func() string
}

// NewMasterHandler creates a new MasterHandler.
func NewMasterHandler(s *store.Store) *MasterHandler {
	return &MasterHandler{
		store: s,
		newID: uuid.NewString,
	}
}

// Get returns the master data.
func (h *MasterHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, h.store.MasterData())
}

// Add appends the body item to a master section under a fresh id.
func (h *MasterHandler) Add(w http.ResponseWriter, r *http.Request) {
	section, ok := sectionParam(w, r)
	if !ok {
		return
	}

	var id string
	switch section {
	case resume.SectionEducation:
		id, ok = addMaster(w, r, h.newID, h.store.AddMasterEducation)
	case resume.SectionExperience:
		id, ok = addMaster(w, r, h.newID, h.store.AddMasterExperience)
	case resume.SectionProjects:
		id, ok = addMaster(w, r, h.newID, h.store.AddMasterProject)
	case resume.SectionSkills:
		id, ok = addMaster(w, r, h.newID, h.store.AddMasterSkillCategory)
	}
	if !ok {
		return
	}
	writeJSON(r.Context(), w, http.StatusCreated, IDResponse{ID: id})
}

// Update merges the body patch into a master item and propagates it to
// version copies that still match.
func (h *MasterHandler) Update(w http.ResponseWriter, r *http.Request) {
	section, ok := sectionParam(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	switch section {
	case resume.SectionEducation:
		ok = patchMaster(w, r, id, h.store.UpdateMasterEducation)
	case resume.SectionExperience:
		ok = patchMaster(w, r, id, h.store.UpdateMasterExperience)
	case resume.SectionProjects:
		ok = patchMaster(w, r, id, h.store.UpdateMasterProject)
	case resume.SectionSkills:
		ok = patchMaster(w, r, id, h.store.UpdateMasterSkillCategory)
	}
	if !ok {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete removes a master item. Version copies survive as orphans.
func (h *MasterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	section, ok := sectionParam(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	id := chi.URLParam(r, "id")
	switch section {
	case resume.SectionEducation:
		h.store.DeleteMasterEducation(ctx, id)
	case resume.SectionExperience:
		h.store.DeleteMasterExperience(ctx, id)
	case resume.SectionProjects:
		h.store.DeleteMasterProject(ctx, id)
	case resume.SectionSkills:
		h.store.DeleteMasterSkillCategory(ctx, id)
	}
	w.WriteHeader(http.StatusNoContent)
}

func addMaster[T resume.Item[T]](w http.ResponseWriter, r *http.Request, newID func() string, add func(context.Context, T)) (string, bool) {
	var item T
	if !decodeJSON(w, r, &item) {
		return "", false
	}
	id := newID()
	add(r.Context(), item.WithLineage(id, "", false))
	return id, true
}

func patchMaster[P any](w http.ResponseWriter, r *http.Request, id string, update func(context.Context, string, P)) bool {
	var patch P
	if !decodeJSON(w, r, &patch) {
		return false
	}
	update(r.Context(), id, patch)
	return true
}
