package models

// Chat message roles accepted from the browser.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Reply sources reported back to the client.
const (
	SourceAI            = "ai"
	SourceLocal         = "local"
	SourceLocalFallback = "local-fallback"
	SourceErrorFallback = "error-fallback"
)

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user", "assistant" or "system"
	Content string `json:"content"`
}

// ChatResponse is the reply returned by the chat endpoint.
type ChatResponse struct {
	Reply  string `json:"reply"`
	Source string `json:"source"`
}
