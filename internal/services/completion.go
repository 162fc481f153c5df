package services

import "context"

// Completer is any chat-completion provider that can answer in JSON mode.
// Both the Groq (OpenAI-compatible) and Gemini services implement it so the
// story service does not need to know which one is configured.
type Completer interface {
	// Complete sends one system turn and one user turn and returns the raw
	// completion text. An empty completion is an error.
	Complete(ctx context.Context, system, user string) (string, error)
}
