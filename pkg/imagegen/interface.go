package imagegen

import "context"

// IImageGen defines the interface for the text-to-image generation client.
// Implementations are safe for concurrent use.
type IImageGen interface {
	// Generate creates an image from a text prompt and returns the raw bytes.
	Generate(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used.
	Model() string
}

// New creates a new image generation client with the given configuration.
func New(cfg Config) (IImageGen, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newImageGenImpl(cfg), nil
}
