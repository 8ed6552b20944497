package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"resume-studio/internal/contextutil"
	"resume-studio/internal/resume"
)

// ParseService turns extracted résumé text into a structured résumé.
type ParseService interface {
	// ParseResume asks the LLM to structure text. Items without ids get fresh ones.
	ParseResume(ctx context.Context, text string) (resume.Resume, error)
}

type parseService struct {
	llmClient LLMClient
	logger    *slog.Logger
}

// NewParseService creates a new ParseService.
func NewParseService(llmClient LLMClient) ParseService {
	return &parseService{
		llmClient: llmClient,
		logger:    slog.Default(),
	}
}

func (s *parseService) ParseResume(ctx context.Context, text string) (resume.Resume, error) {
	logger := contextutil.LoggerFromContextOr(ctx, s.logger)

	text = strings.TrimSpace(text)
	if text == "" {
		logger.WarnContext(ctx, "empty text in parse request")
		return resume.Resume{}, &ValidationError{
			Field:   "text",
			Message: "cannot be empty",
		}
	}

	var raw json.RawMessage
	if err := askJSON(ctx, s.llmClient, parseSystemPrompt, parsePrompt(text), &raw); err != nil {
		logger.ErrorContext(ctx, "failed to parse résumé with LLM", "error", err)
		return resume.Resume{}, WrapExternal(err, "failed to parse résumé")
	}
	if err := resume.ValidateResumeJSON(raw); err != nil {
		logger.ErrorContext(ctx, "LLM returned a malformed résumé", "error", err)
		return resume.Resume{}, WrapExternal(err, "failed to parse résumé")
	}

	var r resume.Resume
	if err := json.Unmarshal(raw, &r); err != nil {
		return resume.Resume{}, WrapExternal(err, "failed to decode parsed résumé")
	}
	fillIDs(r.Education)
	fillIDs(r.Experience)
	fillIDs(r.Projects)
	for i := range r.Experience {
		r.Experience[i].Link = dropEmpty(r.Experience[i].Link)
	}
	for i := range r.Projects {
		r.Projects[i].Link = dropEmpty(r.Projects[i].Link)
	}

	logger.InfoContext(ctx, "résumé parsed",
		"text_length", len(text),
		"experience", len(r.Experience),
		"projects", len(r.Projects))
	return r, nil
}

func fillIDs[T resume.Item[T]](items []T) {
	for i, it := range items {
		if it.ItemID() == "" {
			items[i] = it.WithLineage(uuid.NewString(), it.MasterRef(), it.SyncsWithMaster())
		}
	}
}

func dropEmpty(link *string) *string {
	if link == nil || strings.TrimSpace(*link) == "" {
		return nil
	}
	return link
}
