package capability

import "encoding/base64"

// Capability is a distinct kind of model invocation.
type Capability string

const (
	CapabilityAnalyze   Capability = "analyze"
	CapabilityGenerate  Capability = "generate"
	CapabilityTransform Capability = "transform"
	CapabilityScore     Capability = "score"
)

// Kind tells the consumer how to render the payload.
type Kind string

const (
	KindText  Kind = "text"
	KindImage Kind = "image"
)

// Request is the adapter input: the original prompt and, when supplied, the
// attached image. Model optionally overrides the adapter's default model.
type Request struct {
	Prompt     string
	ImageBytes []byte
	ImageType  string // "jpeg", "png", ...
	Model      string
}

// Result is the outcome of one capability invocation. When Err is set no
// payload fields are usable.
type Result struct {
	Kind       Kind
	Text       string
	ImageBytes []byte
	ImageType  string
	ModelUsed  string
	Metadata   map[string]any
	// Scores is populated by the score capability only.
	Scores *ScoreReport

	Err error
}

// ScoreReport is the parsed Image-as-a-Judge evaluation.
type ScoreReport struct {
	Scores       map[string]CriterionScore `json:"scores"`
	OverallScore float64                   `json:"overall_score"`
	Summary      string                    `json:"summary"`
	JudgeModel   string                    `json:"judge_model"`
}

// CriterionScore is one rubric criterion's score and rationale.
type CriterionScore struct {
	Score     float64 `json:"score"`
	Rationale string  `json:"rationale"`
}

// EncodeDataURL converts raw image bytes to a base64 data URL.
func EncodeDataURL(raw []byte, imageType string) string {
	if imageType == "" {
		imageType = "jpeg"
	}
	return "data:image/" + imageType + ";base64," + base64.StdEncoding.EncodeToString(raw)
}

func errResult(err error) Result {
	return Result{Err: err}
}
