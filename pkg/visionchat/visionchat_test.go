package visionchat_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vision-gateway/pkg/visionchat"
)

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var raw map[string]any
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		msgs := raw["messages"].([]any)
		first := msgs[0].(map[string]any)

		// Mock command: a plain-string prompt of "cause_500" triggers a failure.
		if s, ok := first["content"].(string); ok && s == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"model": "claude-sonnet-4",
			"choices": [
				{"index": 0, "message": {"role": "assistant", "content": "a red bicycle"}, "finish_reason": "stop"}
			],
			"usage": {"prompt_tokens": 10, "completion_tokens": 4, "total_tokens": 14}
		}`))
	}))
	defer ts.Close()

	client, err := visionchat.New(visionchat.Config{
		APIKey:  "test-token",
		BaseURL: ts.URL,
	})
	if err != nil {
		t.Fatalf("unexpected config error: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &visionchat.Request{
			Messages: []visionchat.Message{
				{Role: "user", Parts: []visionchat.Part{{Text: "What's in this image?"}}},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "a red bicycle" {
			t.Errorf("unexpected text: %s", resp.Text)
		}
		if resp.Usage.TotalTokens != 14 {
			t.Errorf("unexpected usage: %+v", resp.Usage)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &visionchat.Request{
			Messages: []visionchat.Message{
				{Role: "user", Parts: []visionchat.Part{{Text: "cause_500"}}},
			},
		})
		if err == nil {
			t.Fatal("expected error from 500 response")
		}
		if !strings.Contains(err.Error(), "500") {
			t.Errorf("error should carry upstream status: %v", err)
		}
	})
}

func TestClient_ImagePartsWireFormat(t *testing.T) {
	var captured map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ok"}}],"usage":{}}`))
	}))
	defer ts.Close()

	client, _ := visionchat.New(visionchat.Config{APIKey: "t", BaseURL: ts.URL, Model: "gpt-5"})

	_, err := client.GenerateContent(context.Background(), &visionchat.Request{
		Messages: []visionchat.Message{
			{Role: "user", Parts: []visionchat.Part{
				{Text: "describe"},
				{ImageDataURL: "data:image/jpeg;base64,aGk=", EphemeralCache: true},
			}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if captured["model"] != "gpt-5" {
		t.Errorf("expected default model on request, got %v", captured["model"])
	}

	msg := captured["messages"].([]any)[0].(map[string]any)
	parts, ok := msg["content"].([]any)
	if !ok {
		t.Fatalf("image message must serialize content as a part array, got %T", msg["content"])
	}
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(parts))
	}

	imgPart := parts[1].(map[string]any)
	if imgPart["type"] != "image_url" {
		t.Errorf("unexpected part type: %v", imgPart["type"])
	}
	if imgPart["image_url"].(map[string]any)["url"] != "data:image/jpeg;base64,aGk=" {
		t.Errorf("image data URL not forwarded")
	}
	if imgPart["cache_control"].(map[string]any)["type"] != "ephemeral" {
		t.Errorf("cache_control missing for ephemeral-cache part")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := visionchat.Config{APIKey: "k"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error when BaseURL is missing")
	}

	cfg = visionchat.Config{APIKey: "k", BaseURL: "http://x"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != visionchat.DefaultModel {
		t.Errorf("expected default model applied, got %s", cfg.Model)
	}
	if cfg.HTTPClient == nil {
		t.Error("expected default HTTP client applied")
	}
	if cfg.HTTPClient.Timeout != visionchat.DefaultTimeout {
		t.Errorf("expected default timeout, got %s", cfg.HTTPClient.Timeout)
	}

	cfg = visionchat.Config{APIKey: "k", BaseURL: "http://x", Timeout: 5 * time.Second}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPClient.Timeout != 5*time.Second {
		t.Errorf("configured timeout not applied, got %s", cfg.HTTPClient.Timeout)
	}
}
