// Package handlers exposes the résumé store, its renderers and the LLM
// services over HTTP.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"resume-studio/internal/contextutil"
	"resume-studio/internal/resume"
	"resume-studio/internal/service"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 2 << 20

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// IDResponse carries the id of a created resource.
type IDResponse struct {
	ID string `json:"id"`
}

// writeJSON encodes v with the given status code.
func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
	})
}

// decodeJSON reads the request body into dst, answering 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// sectionParam resolves the {section} URL parameter, answering 400 when it
// names no known section.
func sectionParam(w http.ResponseWriter, r *http.Request) (resume.Section, bool) {
	name := chi.URLParam(r, "section")
	section, err := resume.ParseSection(name)
	if err != nil {
		ctx := r.Context()
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "unknown section", "section", name)
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Unknown section: %s", name))
		return 0, false
	}
	return section, true
}

// handleServiceError logs err and maps it to a status: validation failures
// are 400, backend failures 502, the rest 500 with defaultMsg.
func handleServiceError(w http.ResponseWriter, ctx context.Context, err error, defaultMsg string) {
	contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "service error", "error", err)

	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, service.ErrExternalService):
		writeError(w, http.StatusBadGateway, "External service error")
	default:
		writeError(w, http.StatusInternalServerError, defaultMsg)
	}
}
