package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bobarin/nova/internal/models"
	"github.com/rs/zerolog/log"
)

const maxLogLen = 2000

// StoryService turns user inputs into a story document via the completion provider.
type StoryService struct {
	completer   Completer
	stripFences bool
}

// NewStoryService creates a story service. When stripFences is set, markdown
// code fences around the model output are removed before parsing.
func NewStoryService(completer Completer, stripFences bool) *StoryService {
	return &StoryService{
		completer:   completer,
		stripFences: stripFences,
	}
}

// Generate builds the prompt, calls the provider once and returns the completion
// if it parses as JSON. The document shape is not validated.
// All failures wrap ErrGenerationFailed; there is no retry.
func (s *StoryService) Generate(ctx context.Context, inputs models.UserInputs) (json.RawMessage, error) {
	prompt := BuildPrompt(inputs)

	log.Info().Str("story_type", string(inputs.StoryType)).Msg("Sending story prompt to completion provider")

	raw, err := s.completer.Complete(ctx, StorySystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	text := raw
	if s.stripFences {
		text = stripJSONFences(text)
	}

	if !json.Valid([]byte(text)) {
		log.Warn().Str("raw_response", truncate(raw, maxLogLen)).Msg("Completion is not valid JSON")
		return nil, fmt.Errorf("%w: completion is not valid JSON", ErrGenerationFailed)
	}

	return json.RawMessage(text), nil
}

// stripJSONFences removes a surrounding ```json ... ``` (or bare ```) fence.
func stripJSONFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
