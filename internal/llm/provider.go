package llm

import "context"

// Provider is the completion backend behind the doc-chat, study, and
// podcast features. Implementations cover OpenAI, Gemini, and Ollama.
type Provider interface {
	// Complete runs one chat completion.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	// Name identifies the backend, e.g. "google" or "ollama".
	Name() string
}
