package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

const (
	groqDefaultBaseURL = "https://api.groq.com/openai/v1"
	groqStoryModel     = "llama-3.1-8b-instant"
)

// OpenAIService talks to any OpenAI-compatible chat endpoint. In production it
// points at Groq.
type OpenAIService struct {
	client *openai.Client
	model  string
}

// Ensure OpenAIService implements Completer at compile time.
var _ Completer = (*OpenAIService)(nil)

// NewGroqService creates a completion service against Groq's OpenAI-compatible API.
// An empty baseURL uses Groq's public endpoint.
func NewGroqService(apiKey, baseURL string) *OpenAIService {
	if baseURL == "" {
		baseURL = groqDefaultBaseURL
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL

	return &OpenAIService{
		client: openai.NewClientWithConfig(cfg),
		model:  groqStoryModel,
	}
}

// Complete requests a JSON-mode chat completion.
func (s *OpenAIService) Complete(ctx context.Context, system, user string) (string, error) {
	log.Debug().Str("model", s.model).Int("prompt_len", len(user)).Msg("[Groq] requesting completion")

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: system,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: user,
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("groq request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in groq response")
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("empty completion from groq (finish_reason=%s)", resp.Choices[0].FinishReason)
	}

	log.Debug().
		Int("completion_len", len(content)).
		Int("total_tokens", resp.Usage.TotalTokens).
		Msg("[Groq] completion received")

	return content, nil
}
