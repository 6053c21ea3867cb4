package mlserving

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// newImageToImageImpl creates a new image-to-image implementation.
func newImageToImageImpl(cfg Config) *imageToImageImpl {
	return &imageToImageImpl{
		endpointURL: cfg.EndpointURL,
		apiKey:      cfg.APIKey,
		httpClient:  cfg.HTTPClient,
	}
}

// Transform sends a dataframe_split invocation to the serving endpoint and
// decodes the base64 prediction back into image bytes.
func (t *imageToImageImpl) Transform(ctx context.Context, req *Request) (*Response, error) {
	if len(req.InitImage) == 0 {
		return nil, fmt.Errorf("mlserving: init image is empty")
	}

	body, err := json.Marshal(buildWireRequest(req))
	if err != nil {
		return nil, fmt.Errorf("mlserving: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpointURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("mlserving: failed to create request: %w", err)
	}

	if t.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+t.apiKey)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("mlserving: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("mlserving: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var wireResp wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&wireResp); err != nil {
		return nil, fmt.Errorf("mlserving: failed to decode response: %w", err)
	}

	raw, err := base64.StdEncoding.DecodeString(wireResp.Predictions)
	if err != nil {
		return nil, fmt.Errorf("mlserving: failed to decode prediction payload: %w", err)
	}

	return &Response{ImageBytes: raw}, nil
}

func buildWireRequest(req *Request) *wireRequest {
	negative := req.NegativePriorPrompt
	if negative == "" {
		negative = DefaultNegativePriorPrompt
	}
	strength := req.Strength
	if strength <= 0 {
		strength = DefaultStrength
	}
	guidance := req.GuidanceScale
	if guidance <= 0 {
		guidance = DefaultGuidanceScale
	}
	steps := req.InferenceSteps
	if steps <= 0 {
		steps = DefaultInferenceSteps
	}

	initImage := base64.StdEncoding.EncodeToString(req.InitImage)

	return &wireRequest{
		DataframeSplit: wireDataframe{
			Columns: []string{
				"prompt", "negative_prior_prompt", "num_inference_steps",
				"init_image", "strength", "guidance_scale",
			},
			Data: [][]any{{
				req.Prompt, negative, steps, initImage, strength, guidance,
			}},
		},
	}
}
