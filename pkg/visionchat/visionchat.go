package visionchat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// newVisionChatImpl creates a new vision chat implementation.
func newVisionChatImpl(cfg Config) *visionChatImpl {
	return &visionChatImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a chat-completion request to the model-serving API.
func (v *visionChatImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	wireReq := v.transformRequest(req)

	body, err := json.Marshal(wireReq)
	if err != nil {
		return nil, fmt.Errorf("visionchat: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		v.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("visionchat: failed to create request: %w", err)
	}

	if v.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+v.apiKey)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := v.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("visionchat: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("visionchat: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var wireResp wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&wireResp); err != nil {
		return nil, fmt.Errorf("visionchat: failed to decode response: %w", err)
	}

	return v.transformResponse(&wireResp), nil
}

// Model returns the default model being used.
func (v *visionChatImpl) Model() string {
	return v.model
}

func (v *visionChatImpl) transformRequest(req *Request) *wireRequest {
	model := req.Model
	if model == "" {
		model = v.model
	}

	wireReq := &wireRequest{
		Model:       model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]wireMessage, 0, len(req.Messages)),
	}

	for _, msg := range req.Messages {
		wireReq.Messages = append(wireReq.Messages, transformMessage(msg))
	}

	return wireReq
}

func transformMessage(msg Message) wireMessage {
	hasImage := false
	for _, p := range msg.Parts {
		if p.ImageDataURL != "" {
			hasImage = true
			break
		}
	}

	if !hasImage {
		// Text-only messages go out as a plain string for broad compatibility.
		content := ""
		for _, p := range msg.Parts {
			if p.Text == "" {
				continue
			}
			if content != "" {
				content += "\n"
			}
			content += p.Text
		}
		return wireMessage{Role: msg.Role, Content: content}
	}

	parts := make([]wireContentPart, 0, len(msg.Parts))
	for _, p := range msg.Parts {
		if p.Text != "" {
			parts = append(parts, wireContentPart{Type: "text", Text: p.Text})
		}
		if p.ImageDataURL != "" {
			part := wireContentPart{
				Type:     "image_url",
				ImageURL: &wireImageURL{URL: p.ImageDataURL},
			}
			if p.EphemeralCache {
				part.CacheControl = &wireCacheControl{Type: "ephemeral"}
			}
			parts = append(parts, part)
		}
	}
	return wireMessage{Role: msg.Role, Content: parts}
}

func (v *visionChatImpl) transformResponse(resp *wireResponse) *Response {
	out := &Response{ModelUsed: resp.Model}
	if out.ModelUsed == "" {
		out.ModelUsed = v.model
	}
	if len(resp.Choices) > 0 {
		out.Text = resp.Choices[0].Message.Content
	}
	out.Usage = Usage{
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		TotalTokens:  resp.Usage.TotalTokens,
	}
	return out
}
