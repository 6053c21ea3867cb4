package imagegen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// newImageGenImpl creates a new image generation implementation.
func newImageGenImpl(cfg Config) *imageGenImpl {
	return &imageGenImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// Generate sends a text-to-image request to the images endpoint. Endpoints may
// answer with inline base64 or a download URL; both are normalized to bytes.
func (g *imageGenImpl) Generate(ctx context.Context, req *Request) (*Response, error) {
	model := req.Model
	if model == "" {
		model = g.model
	}

	body, err := json.Marshal(wireRequest{Model: model, Prompt: req.Prompt})
	if err != nil {
		return nil, fmt.Errorf("imagegen: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/images/generations", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("imagegen: failed to create request: %w", err)
	}

	if g.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("imagegen: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("imagegen: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var wireResp wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&wireResp); err != nil {
		return nil, fmt.Errorf("imagegen: failed to decode response: %w", err)
	}

	if len(wireResp.Data) == 0 {
		return nil, fmt.Errorf("imagegen: empty generation response")
	}

	img := wireResp.Data[0]

	switch {
	case img.B64JSON != "":
		raw, err := base64.StdEncoding.DecodeString(img.B64JSON)
		if err != nil {
			return nil, fmt.Errorf("imagegen: failed to decode b64_json payload: %w", err)
		}
		return &Response{ImageBytes: raw, ModelUsed: model}, nil

	case img.URL != "":
		raw, err := g.fetchImage(ctx, img.URL)
		if err != nil {
			return nil, err
		}
		return &Response{ImageBytes: raw, ModelUsed: model}, nil

	default:
		return nil, fmt.Errorf("imagegen: generation response carries neither b64_json nor url")
	}
}

// Model returns the model being used.
func (g *imageGenImpl) Model() string {
	return g.model
}

func (g *imageGenImpl) fetchImage(ctx context.Context, url string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("imagegen: failed to create download request: %w", err)
	}

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("imagegen: image download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("imagegen: image download error %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("imagegen: failed to read image body: %w", err)
	}
	return raw, nil
}
