package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"vision-gateway/internal/router"
	"vision-gateway/pkg/log"
	"vision-gateway/pkg/visionchat"
)

const routingPromptTemplate = `You are an AI router that determines user intent. Analyze the following:

User Prompt: %q
Has Image Attached: %t

Determine which action is appropriate:

ACTIONS:
1. "generate" - User wants to CREATE/GENERATE an image from a text description (no input image)
2. "analyze" - User wants to ANALYZE/UNDERSTAND an existing image
3. "transform" - User wants to TRANSFORM/MODIFY an existing image based on a prompt (image-to-image)
4. "score" - User wants a QUALITY EVALUATION of an existing image

Important Rules:
- PRIORITY: If the prompt asks about existing content ("what", "describe", "identify", "what's", "tell me about"), choose "analyze"
- If has_image is true AND the prompt contains generation/transformation verbs ("generate", "create", "draw", "make", "produce", "turn into", "convert", "transform", "modify"), choose "transform"
- If has_image is false, choose "generate"
- If has_image is true AND the prompt is ambiguous, default to "analyze"

Respond ONLY with a JSON object in this exact format:
{"action": "generate" or "analyze" or "transform" or "score", "reasoning": "brief explanation"}`

// routingTemperature keeps the routing call near-deterministic.
const routingTemperature = 0.1

// LLM delegates classification to an auxiliary chat-completion call. Any
// failure (transport, unparseable label) falls back to the heuristic path;
// classification is never fatal.
type LLM struct {
	chat     visionchat.IVisionChat
	model    string
	fallback router.Classifier
	l        log.Logger
}

// NewLLM creates the LLM-backed classifier. model is the router model id;
// fallback handles failures and defaults to the keyword heuristic when nil.
func NewLLM(chat visionchat.IVisionChat, model string, fallback router.Classifier, l log.Logger) *LLM {
	if fallback == nil {
		fallback = NewHeuristic()
	}
	return &LLM{chat: chat, model: model, fallback: fallback, l: l}
}

// Classify implements router.Classifier.
func (c *LLM) Classify(ctx context.Context, prompt string, hasImage bool) (router.Decision, error) {
	resp, err := c.chat.GenerateContent(ctx, &visionchat.Request{
		Model:       c.model,
		Temperature: routingTemperature,
		Messages: []visionchat.Message{
			{Role: "user", Parts: []visionchat.Part{
				{Text: fmt.Sprintf(routingPromptTemplate, prompt, hasImage)},
			}},
		},
	})
	if err != nil {
		c.l.Warnf(ctx, "routing model call failed, falling back to heuristic: %v", err)
		return c.fallback.Classify(ctx, prompt, hasImage)
	}

	decision, err := parseRoutingResponse(resp.Text)
	if err != nil {
		c.l.Warnf(ctx, "unparseable routing label %q, falling back to heuristic: %v",
			truncate(resp.Text, 120), err)
		return c.fallback.Classify(ctx, prompt, hasImage)
	}

	return decision, nil
}

func parseRoutingResponse(raw string) (router.Decision, error) {
	cleaned := stripMarkdownFences(raw)

	var parsed struct {
		Action    string `json:"action"`
		Reasoning string `json:"reasoning"`
	}
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		// Some models answer with the bare label instead of JSON.
		if intent, ok := router.ParseIntent(cleaned); ok {
			return router.Decision{Intent: intent, Reasoning: "routing model returned bare label"}, nil
		}
		return router.Decision{}, err
	}

	intent, ok := router.ParseIntent(parsed.Action)
	if !ok {
		return router.Decision{}, fmt.Errorf("label %q is not in the intent set", parsed.Action)
	}

	return router.Decision{Intent: intent, Reasoning: parsed.Reasoning}, nil
}

// stripMarkdownFences extracts the body of a ```json fenced block, if any.
func stripMarkdownFences(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "```json"); idx >= 0 {
		s = s[idx+len("```json"):]
		if end := strings.Index(s, "```"); end >= 0 {
			s = s[:end]
		}
		return strings.TrimSpace(s)
	}
	if idx := strings.Index(s, "```"); idx >= 0 {
		s = s[idx+3:]
		if end := strings.Index(s, "```"); end >= 0 {
			s = s[:end]
		}
		return strings.TrimSpace(s)
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
