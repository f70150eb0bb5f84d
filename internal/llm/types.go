package llm

// Role is the speaker of a chat message. Persisted chat history stores
// roles as these strings, so the values are part of the schema.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of a chat completion conversation.
type Message struct {
	Role    Role
	Content string
}

// CompletionRequest carries one chat completion call. Zero MaxTokens and
// Temperature leave the backend defaults in place.
type CompletionRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// CompletionResponse is the completed text plus the usage accounting the
// backend reports.
type CompletionResponse struct {
	Content      string
	InputTokens  int
	OutputTokens int
	Model        string
	FinishReason string
}
