package router

import (
	"context"
	"strings"

	"vision-gateway/internal/capability"
)

// Intent is the user's inferred goal, driving which downstream capability is
// invoked. The set is closed; the dispatcher treats anything else as a
// configuration error.
type Intent string

const (
	IntentGenerate  Intent = "generate"
	IntentTransform Intent = "transform"
	IntentAnalyze   Intent = "analyze"
	IntentScore     Intent = "score"
)

// ActionDecodeBase64 is reported when the prompt itself carried an embedded
// base64 image and no model was called.
const ActionDecodeBase64 = "decode_base64"

// ParseIntent matches a raw label against the closed intent set,
// case-insensitively. Labels in the "<intent>_image" form used by some
// routing models are accepted as aliases.
func ParseIntent(raw string) (Intent, bool) {
	label := strings.ToLower(strings.TrimSpace(raw))
	label = strings.TrimSuffix(label, "_image")

	switch Intent(label) {
	case IntentGenerate, IntentTransform, IntentAnalyze, IntentScore:
		return Intent(label), true
	}
	return "", false
}

// Decision is the classifier's output: one label plus the reasoning behind it.
type Decision struct {
	Intent    Intent
	Reasoning string
}

// Classifier decides which capability a prompt is asking for. The heuristic
// and LLM-backed implementations are interchangeable; tests substitute a
// deterministic stub for the network-dependent one.
type Classifier interface {
	Classify(ctx context.Context, prompt string, hasImage bool) (Decision, error)
}

// RouteInput is one user submission. Immutable once constructed.
type RouteInput struct {
	Prompt      string
	ImageBytes  []byte
	ImageType   string // "jpeg", "png", ... (defaults to jpeg)
	VisionModel string // optional override for the analyze capability
}

// RouteOutput is the routed result: which action was taken, why, and the
// capability's payload. Result.Err carries degraded upstream failures; the
// caller must check it before using the payload.
type RouteOutput struct {
	Action    string
	Reasoning string
	Result    capability.Result

	// ResultID references a stored generated image, usable with Score.
	// Empty when the result is not scoreable.
	ResultID string
}

// ManualInput is a direct vision query bypassing the classifier.
type ManualInput struct {
	Prompt     string
	ImageBytes []byte
	ImageType  string
	Model      string
}

// ManualOutput is the vision model's answer.
type ManualOutput struct {
	Answer    string
	ModelUsed string
}

// ScoreInput asks for an Image-as-a-Judge evaluation of a stored result.
type ScoreInput struct {
	ResultID   string
	JudgeModel string // optional override
}

// ScoreOutput is the parsed judge report plus the prompt the image came from.
type ScoreOutput struct {
	Report capability.ScoreReport
	Prompt string
}
