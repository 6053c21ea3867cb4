package mlserving

import "context"

// IImageToImage defines the interface for the image-to-image serving client.
// Implementations are safe for concurrent use.
type IImageToImage interface {
	// Transform generates a new image from an input image and a text prompt.
	Transform(ctx context.Context, req *Request) (*Response, error)
}

// New creates a new image-to-image client with the given configuration.
func New(cfg Config) (IImageToImage, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newImageToImageImpl(cfg), nil
}
