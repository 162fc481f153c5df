package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

const geminiStoryModel = "gemini-2.5-flash"

// GeminiService is the alternate completion provider, selected with
// COMPLETION_PROVIDER=gemini.
type GeminiService struct {
	client *genai.Client
	model  string
}

// Ensure GeminiService implements Completer at compile time.
var _ Completer = (*GeminiService)(nil)

// NewGeminiService creates a Gemini completion service using the Gen AI SDK.
func NewGeminiService(ctx context.Context, apiKey string) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiService{
		client: client,
		model:  geminiStoryModel,
	}, nil
}

// Complete asks Gemini for a JSON response (ResponseMIMEType application/json).
func (s *GeminiService) Complete(ctx context.Context, system, user string) (string, error) {
	log.Debug().Str("model", s.model).Int("prompt_len", len(user)).Msg("[Gemini] requesting completion")

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(user), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		ResponseMIMEType:  "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	content := resp.Text()
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("empty completion from gemini")
	}

	log.Debug().Int("completion_len", len(content)).Msg("[Gemini] completion received")

	return content, nil
}
