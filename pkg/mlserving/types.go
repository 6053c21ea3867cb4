package mlserving

import (
	"fmt"
	"net/http"
	"time"
)

const (
	// DefaultTimeout covers slow diffusion runs on the serving endpoint.
	DefaultTimeout = 120 * time.Second

	// DefaultStrength keeps half of the original image.
	DefaultStrength = 0.5

	// DefaultGuidanceScale controls prompt adherence.
	DefaultGuidanceScale = 12.0

	// DefaultInferenceSteps is the default denoising step count.
	DefaultInferenceSteps = 50
)

// DefaultNegativePriorPrompt suppresses the usual diffusion artifacts.
const DefaultNegativePriorPrompt = "lowres, changed skin tones, error, cropped, worst quality, " +
	"low quality, jpeg artifacts, ugly, duplicate, morbid, mutilated, " +
	"out of frame, extra fingers, mutated hands, poorly drawn hands, " +
	"poorly drawn face, mutation, deformed, blurry, dehydrated, " +
	"bad anatomy, bad proportions, extra limbs, cloned face"

// Config holds image-to-image client configuration.
type Config struct {
	// EndpointURL is the full invocation URL of the serving endpoint.
	EndpointURL string
	APIKey      string
	// Timeout bounds each call; zero means DefaultTimeout.
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate validates the configuration and applies defaults.
func (c *Config) Validate() error {
	if c.EndpointURL == "" {
		return fmt.Errorf("mlserving: EndpointURL is required")
	}
	if c.APIKey == "" && c.HTTPClient == nil {
		return fmt.Errorf("mlserving: APIKey or an authenticated HTTPClient is required")
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return nil
}

// imageToImageImpl is the internal implementation of IImageToImage.
type imageToImageImpl struct {
	endpointURL string
	apiKey      string
	httpClient  *http.Client
}

// Request represents an image-to-image transformation request.
type Request struct {
	Prompt              string
	InitImage           []byte
	NegativePriorPrompt string  // defaults to DefaultNegativePriorPrompt
	Strength            float64 // 0.0 keeps the original, 1.0 replaces it
	GuidanceScale       float64
	InferenceSteps      int
}

// Response carries the transformed image. The serving endpoint returns PNG.
type Response struct {
	ImageBytes []byte
}

// MLflow serving wire types (dataframe_split orientation).
type wireRequest struct {
	DataframeSplit wireDataframe `json:"dataframe_split"`
}

type wireDataframe struct {
	Columns []string `json:"columns"`
	Data    [][]any  `json:"data"`
}

type wireResponse struct {
	Predictions string `json:"predictions"`
}
