package visionchat

import (
	"fmt"
	"net/http"
	"time"
)

// Config holds vision chat client configuration.
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
		return fmt.Errorf("visionchat: APIKey or an authenticated HTTPClient is required")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("visionchat: BaseURL is required")
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

// visionChatImpl is the internal implementation of IVisionChat.
type visionChatImpl struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Request represents a chat-completion request.
type Request struct {
	// Model overrides the client default when set.
	Model       string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Message is one conversation message.
type Message struct {
	Role  string
	Parts []Part
}

// Part is either a text fragment or a base64 data-URL image.
type Part struct {
	Text         string
	ImageDataURL string
	// EphemeralCache marks the image part with ephemeral cache_control,
	// required by some hosted models.
	EphemeralCache bool
}

// Response represents the model's answer.
type Response struct {
	Text      string
	ModelUsed string
	Usage     Usage
}

// Usage tracks token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// OpenAI-compatible wire types.
type wireRequest struct {
	Model       string        `json:"model"`
	Messages    []wireMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type wireMessage struct {
	Role string `json:"role"`
	// Content is a plain string for text-only messages and a part array
	// when an image is attached.
	Content any `json:"content"`
}

type wireContentPart struct {
	Type         string             `json:"type"`
	Text         string             `json:"text,omitempty"`
	ImageURL     *wireImageURL      `json:"image_url,omitempty"`
	CacheControl *wireCacheControl  `json:"cache_control,omitempty"`
}

type wireImageURL struct {
	URL string `json:"url"`
}

type wireCacheControl struct {
	Type string `json:"type"`
}

type wireResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []wireChoice `json:"choices"`
	Usage   wireUsage    `json:"usage"`
}

type wireChoice struct {
	Index        int `json:"index"`
	Message      struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

type wireUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
