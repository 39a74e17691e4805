package chat

import "context"

// Message is one turn of the conversation.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Provider is one external completion backend. The dispatcher tries
// providers in priority order and only calls Complete on providers that
// report themselves configured.
type Provider interface {
	Name() string
	Configured() bool
	Complete(ctx context.Context, system string, messages []Message) (string, error)
}
