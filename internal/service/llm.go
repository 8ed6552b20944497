package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_llm_client.go -package=mocks resume-studio/internal/service LLMClient
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_improvement_service.go -package=mocks resume-studio/internal/service ImprovementService
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_parse_service.go -package=mocks resume-studio/internal/service ParseService

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"resume-studio/internal/llm"
)

// LLMClient is an interface for interacting with an LLM API.
// This interface is defined from the service layer's perspective (consumer-first).
type LLMClient interface {
	// Chat sends messages to the LLM and returns the reply.
	Chat(ctx context.Context, messages []llm.Message, params llm.ChatParams) (string, error)
}

// askJSON sends a system + user prompt asking for a JSON object and decodes
// the reply into out.
func askJSON(ctx context.Context, client LLMClient, system, user string, out any) error {
	reply, err := client.Chat(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: user},
	}, llm.ChatParams{ResponseFormat: llm.ResponseFormatJSON})
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(stripFences(reply)), out); err != nil {
		return fmt.Errorf("model returned invalid JSON: %w", err)
	}
	return nil
}

// stripFences removes a surrounding markdown code fence some models add
// despite the JSON response format.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
