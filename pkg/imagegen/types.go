package imagegen

import (
	"fmt"
	"net/http"
	"time"
)

const (
	// DefaultModel is the default diffusion model.
	DefaultModel = "shutterstock-imageai"

	// DefaultTimeout allows for slow diffusion endpoints.
	DefaultTimeout = 120 * time.Second
)

// Config holds image generation client configuration.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	// Timeout bounds each call; zero means DefaultTimeout.
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate validates the configuration and applies defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" && c.HTTPClient == nil {
		return fmt.Errorf("imagegen: APIKey or an authenticated HTTPClient is required")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("imagegen: BaseURL is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return nil
}

// imageGenImpl is the internal implementation of IImageGen.
type imageGenImpl struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Request represents an image generation request.
type Request struct {
	// Model overrides the client default when set.
	Model  string
	Prompt string
}

// Response carries the generated image.
type Response struct {
	ImageBytes []byte
	ModelUsed  string
}

// OpenAI images API wire types.
type wireRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type wireResponse struct {
	Created int64       `json:"created"`
	Data    []wireImage `json:"data"`
}

type wireImage struct {
	B64JSON string `json:"b64_json,omitempty"`
	URL     string `json:"url,omitempty"`
}
