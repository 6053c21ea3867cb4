package capability

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"vision-gateway/internal/model"
	"vision-gateway/pkg/log"
	"vision-gateway/pkg/visionchat"
)

// ScoringCriterion describes one rubric dimension for Image-as-a-Judge.
type ScoringCriterion struct {
	Key         string
	Name        string
	Description string
	Scale       string
}

// ScoringCriteria is the fixed evaluation rubric.
var ScoringCriteria = []ScoringCriterion{
	{
		Key:         "prompt_adherence",
		Name:        "Prompt Adherence",
		Description: "How well does the generated image match the text prompt?",
		Scale:       "1-5 (1=Poor match, 5=Perfect match)",
	},
	{
		Key:         "visual_quality",
		Name:        "Visual Quality",
		Description: "Overall technical quality: clarity, composition, lighting, colors",
		Scale:       "1-5 (1=Poor quality, 5=Professional quality)",
	},
	{
		Key:         "creativity",
		Name:        "Creativity",
		Description: "How creative and aesthetically pleasing is the image?",
		Scale:       "1-5 (1=Generic, 5=Highly creative)",
	},
	{
		Key:         "coherence",
		Name:        "Coherence",
		Description: "Are all elements in the image logical and well-integrated?",
		Scale:       "1-5 (1=Incoherent, 5=Perfectly coherent)",
	},
}

// ScoreAdapter evaluates a generated image with a vision model acting as
// judge, scoring it against the fixed rubric.
type ScoreAdapter struct {
	chat    visionchat.IVisionChat
	catalog model.Catalog
	l       log.Logger
}

// NewScoreAdapter creates the Image-as-a-Judge adapter.
func NewScoreAdapter(chat visionchat.IVisionChat, catalog model.Catalog, l log.Logger) *ScoreAdapter {
	return &ScoreAdapter{chat: chat, catalog: catalog, l: l}
}

func (s *ScoreAdapter) Capability() Capability { return CapabilityScore }

// Invoke scores req.ImageBytes against req.Prompt (the prompt the image was
// generated from).
func (s *ScoreAdapter) Invoke(ctx context.Context, req Request) Result {
	if len(req.ImageBytes) == 0 {
		return errResult(fmt.Errorf("score: no image provided"))
	}

	judgeModel := req.Model
	if judgeModel == "" {
		judgeModel = s.catalog.DefaultJudgeModel
	}

	resp, err := s.chat.GenerateContent(ctx, &visionchat.Request{
		Model: judgeModel,
		Messages: []visionchat.Message{
			{Role: "user", Parts: []visionchat.Part{
				{Text: buildJudgePrompt(req.Prompt)},
				{
					ImageDataURL:   EncodeDataURL(req.ImageBytes, "png"),
					EphemeralCache: s.catalog.RequiresCacheControl(judgeModel),
				},
			}},
		},
	})
	if err != nil {
		s.l.Warnf(ctx, "score: judge call failed: %v", err)
		return errResult(err)
	}

	report, err := parseScoreReport(resp.Text)
	if err != nil {
		s.l.Warnf(ctx, "score: unparseable judge response: %v", err)
		return errResult(fmt.Errorf("score: failed to parse judge response: %w", err))
	}
	report.JudgeModel = judgeModel

	return Result{
		Kind:      KindText,
		Text:      report.Summary,
		ModelUsed: judgeModel,
		Scores:    report,
	}
}

func buildJudgePrompt(originalPrompt string) string {
	var criteria strings.Builder
	for _, c := range ScoringCriteria {
		fmt.Fprintf(&criteria, "- **%s**: %s (Scale: %s)\n", c.Name, c.Description, c.Scale)
	}

	return fmt.Sprintf(`You are an expert image quality evaluator. Evaluate the generated image based on the following criteria:

**Original Prompt**: %q

**Evaluation Criteria**:
%s
For EACH criterion, provide:
1. A score (1-5)
2. A brief rationale explaining your score

Respond in the following JSON format:
{
  "scores": {
    "prompt_adherence": {"score": <1-5>, "rationale": "explanation"},
    "visual_quality": {"score": <1-5>, "rationale": "explanation"},
    "creativity": {"score": <1-5>, "rationale": "explanation"},
    "coherence": {"score": <1-5>, "rationale": "explanation"}
  },
  "overall_score": <average of all scores>,
  "summary": "brief overall assessment"
}`, originalPrompt, criteria.String())
}

func parseScoreReport(raw string) (*ScoreReport, error) {
	cleaned := stripMarkdownFences(raw)

	var report ScoreReport
	if err := json.Unmarshal([]byte(cleaned), &report); err != nil {
		return nil, err
	}
	if len(report.Scores) == 0 {
		return nil, fmt.Errorf("judge response carries no scores")
	}
	return &report, nil
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
