package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"resume-studio/internal/contextutil"
	"resume-studio/internal/resume"
	"resume-studio/internal/service"
	"resume-studio/internal/store"
)

// ImprovementHandler streams LLM improvements and applies accepted ones.
type ImprovementHandler struct {
	store    *store.Store
	improver service.ImprovementService
}

// NewImprovementHandler creates a new ImprovementHandler.
func NewImprovementHandler(s *store.Store, improver service.ImprovementService) *ImprovementHandler {
	return &ImprovementHandler{
		store:    s,
		improver: improver,
	}
}

// ApplyRequest carries accepted improvements, either directly or as the
// progress events received from the stream.
type ApplyRequest struct {
	resume.Improvements
	Events []service.ProgressEvent `json:"events,omitempty"`
}

// Stream runs the improvement pipeline and relays progress as Server-Sent
// Events. The body may carry a résumé; an empty body improves the current one.
func (h *ImprovementHandler) Stream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		logger.WarnContext(ctx, "failed to read request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var res resume.Resume
	if len(bytes.TrimSpace(body)) == 0 {
		current, ok := h.store.Resume()
		if !ok {
			writeError(w, http.StatusNotFound, "No current version")
			return
		}
		res = current
	} else if err := json.Unmarshal(body, &res); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Create a flusher to send data immediately
	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.ErrorContext(ctx, "streaming not supported by response writer")
		writeError(w, http.StatusInternalServerError, "Streaming not supported")
		return
	}

	// Headers are sent with the first event so that validation failures can
	// still be answered with a plain error response.
	started := false
	emit := func(ev service.ProgressEvent) error {
		if !started {
			w.Header().Set("Content-Type", "text/event-stream")
			w.Header().Set("Cache-Control", "no-cache")
			w.Header().Set("Connection", "keep-alive")
			w.WriteHeader(http.StatusOK)
			started = true
		}
		data, err := json.Marshal(ev)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	}

	err = h.improver.ImproveResume(ctx, res, emit)
	if err != nil && !started {
		handleServiceError(w, ctx, err, "Failed to improve resume")
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "error streaming improvements", "error", err)
		data, _ := json.Marshal(ErrorResponse{Error: err.Error()})
		_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
		flusher.Flush()
		return
	}

	// Send done signal
	_, _ = fmt.Fprintf(w, "data: [DONE]\n\n")
	flusher.Flush()
}

// Apply writes accepted improvements into the current version and returns
// the updated résumé.
func (h *ImprovementHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req ApplyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	imp := req.Improvements
	if len(req.Events) > 0 {
		imp, _ = service.CollectImprovements(req.Events)
	}

	ctx := r.Context()
	h.store.ApplyImprovements(ctx, imp)

	res, ok := h.store.Resume()
	if !ok {
		writeError(w, http.StatusNotFound, "No current version")
		return
	}
	writeJSON(ctx, w, http.StatusOK, res)
}
