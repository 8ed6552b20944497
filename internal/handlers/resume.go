package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"resume-studio/internal/contextutil"
	"resume-studio/internal/document"
	"resume-studio/internal/render"
	"resume-studio/internal/resume"
	"resume-studio/internal/service"
	"resume-studio/internal/store"
)

// maxUploadBytes bounds uploaded résumé files.
const maxUploadBytes = 10 << 20

// ResumeHandler serves the single-résumé view of the current version.
type ResumeHandler struct {
	store    *store.Store
	parser   service.ParseService
	markdown render.Generator
	html     *render.HTMLRenderer
}

// NewResumeHandler creates a new ResumeHandler.
func NewResumeHandler(s *store.Store, parser service.ParseService, markdown render.Generator, html *render.HTMLRenderer) *ResumeHandler {
	return &ResumeHandler{
		store:    s,
		parser:   parser,
		markdown: markdown,
		html:     html,
	}
}

// Get returns the materialized current résumé.
func (h *ResumeHandler) Get(w http.ResponseWriter, r *http.Request) {
	res, ok := h.store.Resume()
	if !ok {
		writeError(w, http.StatusNotFound, "No current version")
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, res)
}

// Put imports a whole résumé. The body must satisfy the résumé schema.
func (h *ResumeHandler) Put(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		logger.WarnContext(ctx, "failed to read request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := resume.ValidateResumeJSON(body); err != nil {
		logger.WarnContext(ctx, "resume payload rejected", "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var res resume.Resume
	if err := json.Unmarshal(body, &res); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.store.SetResume(ctx, res)
	h.Get(w, r)
}

// Delete discards all résumé data.
func (h *ResumeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.store.Reset(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// PatchHeader merges the body into the shared header.
func (h *ResumeHandler) PatchHeader(w http.ResponseWriter, r *http.Request) {
	var patch resume.HeaderPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	h.store.UpdateHeader(r.Context(), patch)
	writeJSON(r.Context(), w, http.StatusOK, h.store.MasterData().Header)
}

// PutSkills merges skill groups into the current version by name.
func (h *ResumeHandler) PutSkills(w http.ResponseWriter, r *http.Request) {
	var skills resume.Skills
	if !decodeJSON(w, r, &skills) {
		return
	}
	h.store.UpdateSkills(r.Context(), skills)
	w.WriteHeader(http.StatusNoContent)
}

// Upload extracts text from a multipart "file" field, has the LLM structure
// it and imports the result.
func (h *ResumeHandler) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		logger.WarnContext(ctx, "invalid multipart upload", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid upload")
		return
	}
	file, fh, err := r.FormFile("file")
	if err != nil {
		logger.WarnContext(ctx, "upload without file", "error", err)
		writeError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		logger.ErrorContext(ctx, "failed to read upload", "error", err)
		writeError(w, http.StatusBadRequest, "Failed to read file")
		return
	}

	text, err := document.ExtractText(fh.Filename, data)
	if err != nil {
		logger.WarnContext(ctx, "text extraction failed", "file", fh.Filename, "error", err)
		switch {
		case errors.Is(err, document.ErrUnsupportedFormat), errors.Is(err, document.ErrNoText):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("Failed to read %s", fh.Filename))
		}
		return
	}

	parsed, err := h.parser.ParseResume(ctx, text)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to parse resume")
		return
	}

	h.store.SetResume(ctx, parsed)
	logger.InfoContext(ctx, "resume imported from upload", "file", fh.Filename, "bytes", len(data))
	writeJSON(ctx, w, http.StatusOK, parsed)
}

// Markdown renders the current résumé as Markdown.
func (h *ResumeHandler) Markdown(w http.ResponseWriter, r *http.Request) {
	res, ok := h.store.Resume()
	if !ok {
		writeError(w, http.StatusNotFound, "No current version")
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, h.markdown.Generate(res))
}

// Preview renders the current résumé as an HTML page.
func (h *ResumeHandler) Preview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	res, ok := h.store.Resume()
	if !ok {
		writeError(w, http.StatusNotFound, "No current version")
		return
	}

	title := res.Header.Name
	if title == "" {
		title = "Resume"
	}
	page, err := h.html.Page(title, h.markdown.Generate(res))
	if err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to render preview", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to render preview")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, page)
}
