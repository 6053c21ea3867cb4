package classifier

import (
	"context"
	"strings"

	"vision-gateway/internal/router"
)

// Keyword groups for the deterministic path. Analysis phrasing wins over
// transformation verbs when an image is attached ("what should I change" is a
// question, not an edit request).
var (
	analyzeKeywords = []string{
		"what", "describe", "identify", "what's", "tell me about",
	}

	transformKeywords = []string{
		"generate", "create", "draw", "make", "produce",
		"turn into", "turn this", "convert", "transform", "modify", "change",
	}

	scoreKeywords = []string{
		"score", "rate", "judge", "evaluate",
	}
)

// Heuristic is the deterministic keyword classifier.
type Heuristic struct{}

// NewHeuristic creates the keyword-based classifier.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// Classify implements router.Classifier. It never fails.
func (h *Heuristic) Classify(_ context.Context, prompt string, hasImage bool) (router.Decision, error) {
	if !hasImage {
		return router.Decision{
			Intent:    router.IntentGenerate,
			Reasoning: "no image attached, prompt treated as a generation request",
		}, nil
	}

	lower := strings.ToLower(prompt)

	if containsAny(lower, analyzeKeywords) {
		return router.Decision{
			Intent:    router.IntentAnalyze,
			Reasoning: "prompt asks about existing content",
		}, nil
	}

	if containsAny(lower, scoreKeywords) {
		return router.Decision{
			Intent:    router.IntentScore,
			Reasoning: "prompt asks for a quality evaluation of the image",
		}, nil
	}

	if containsAny(lower, transformKeywords) {
		return router.Decision{
			Intent:    router.IntentTransform,
			Reasoning: "image attached and prompt contains transformation phrasing",
		}, nil
	}

	return router.Decision{
		Intent:    router.IntentAnalyze,
		Reasoning: "image attached with no transformation phrasing, defaulting to analysis",
	}, nil
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
