package http

import (
	"encoding/base64"

	"vision-gateway/internal/capability"
	"vision-gateway/internal/model"
	"vision-gateway/internal/router"
)

// --- Request DTOs ---

type queryReq struct {
	Prompt     string
	ImageBytes []byte
	ImageType  string
	Model      string
}

func (r queryReq) toInput() router.RouteInput {
	return router.RouteInput{
		Prompt:      r.Prompt,
		ImageBytes:  r.ImageBytes,
		ImageType:   r.ImageType,
		VisionModel: r.Model,
	}
}

type manualReq struct {
	Prompt     string
	ImageBytes []byte
	ImageType  string
	Model      string
}

func (r manualReq) toInput() router.ManualInput {
	return router.ManualInput{
		Prompt:     r.Prompt,
		ImageBytes: r.ImageBytes,
		ImageType:  r.ImageType,
		Model:      r.Model,
	}
}

type scoreReq struct {
	ResultID   string `json:"-"` // populated from URI param
	JudgeModel string `json:"judge_model"`
}

func (r scoreReq) toInput() router.ScoreInput {
	return router.ScoreInput{
		ResultID:   r.ResultID,
		JudgeModel: r.JudgeModel,
	}
}

// --- Response DTOs ---

type queryResp struct {
	Action    string `json:"action"`
	Reasoning string `json:"reasoning,omitempty"`
	Kind      string `json:"kind,omitempty"`
	Text      string `json:"text,omitempty"`
	// ImageBase64 carries image payloads; ImageType tells the consumer how
	// to render them.
	ImageBase64 string         `json:"image_base64,omitempty"`
	ImageType   string         `json:"image_type,omitempty"`
	ModelUsed   string         `json:"model_used,omitempty"`
	ResultID    string         `json:"result_id,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	// Error is set when the upstream call failed; the other payload fields
	// are empty in that case.
	Error string `json:"error,omitempty"`
}

func (h *handler) newQueryResp(out router.RouteOutput) queryResp {
	resp := queryResp{
		Action:    out.Action,
		Reasoning: out.Reasoning,
	}

	if out.Result.Err != nil {
		resp.Error = out.Result.Err.Error()
		return resp
	}

	resp.Kind = string(out.Result.Kind)
	resp.Text = out.Result.Text
	resp.ModelUsed = out.Result.ModelUsed
	resp.ResultID = out.ResultID
	resp.Metadata = out.Result.Metadata
	if out.Result.Kind == capability.KindImage {
		resp.ImageBase64 = base64.StdEncoding.EncodeToString(out.Result.ImageBytes)
		resp.ImageType = out.Result.ImageType
	}
	return resp
}

type manualResp struct {
	Answer    string `json:"answer"`
	ModelUsed string `json:"model_used"`
}

func (h *handler) newManualResp(out router.ManualOutput) manualResp {
	return manualResp{
		Answer:    out.Answer,
		ModelUsed: out.ModelUsed,
	}
}

type criterionResp struct {
	Score     float64 `json:"score"`
	Rationale string  `json:"rationale"`
}

type scoreResp struct {
	Prompt       string                   `json:"prompt"`
	Scores       map[string]criterionResp `json:"scores"`
	OverallScore float64                  `json:"overall_score"`
	Summary      string                   `json:"summary"`
	JudgeModel   string                   `json:"judge_model"`
}

func (h *handler) newScoreResp(out router.ScoreOutput) scoreResp {
	scores := make(map[string]criterionResp, len(out.Report.Scores))
	for k, v := range out.Report.Scores {
		scores[k] = criterionResp{Score: v.Score, Rationale: v.Rationale}
	}
	return scoreResp{
		Prompt:       out.Prompt,
		Scores:       scores,
		OverallScore: out.Report.OverallScore,
		Summary:      out.Report.Summary,
		JudgeModel:   out.Report.JudgeModel,
	}
}

type modelResp struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type modelsResp struct {
	Models             []modelResp `json:"models"`
	DefaultVisionModel string      `json:"default_vision_model"`
}

func (h *handler) newModelsResp(models []model.ModelConfig) modelsResp {
	out := modelsResp{
		Models:             make([]modelResp, len(models)),
		DefaultVisionModel: h.catalog.DefaultVisionModel,
	}
	for i, m := range models {
		out.Models[i] = modelResp{ID: m.ID, Name: m.Name, Type: string(m.Type)}
	}
	return out
}
