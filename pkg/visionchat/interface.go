package visionchat

import "context"

// IVisionChat defines the interface for the chat-completions vision client.
// Implementations are safe for concurrent use.
type IVisionChat interface {
	// GenerateContent sends a chat-completion request, optionally carrying
	// image parts, and returns the model's text answer.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the default model being used.
	Model() string
}

// New creates a new vision chat client with the given configuration.
func New(cfg Config) (IVisionChat, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newVisionChatImpl(cfg), nil
}
