package capability

import (
	"context"
	"fmt"

	"vision-gateway/internal/model"
	"vision-gateway/pkg/log"
	"vision-gateway/pkg/visionchat"
)

// DefaultQuestion is asked when the user submits an image without a prompt.
const DefaultQuestion = "What's in this image?"

// AnalyzeAdapter answers questions about an attached image via the vision
// chat-completion endpoint.
type AnalyzeAdapter struct {
	chat    visionchat.IVisionChat
	catalog model.Catalog
	l       log.Logger
}

// NewAnalyzeAdapter creates the vision Q&A adapter.
func NewAnalyzeAdapter(chat visionchat.IVisionChat, catalog model.Catalog, l log.Logger) *AnalyzeAdapter {
	return &AnalyzeAdapter{chat: chat, catalog: catalog, l: l}
}

func (a *AnalyzeAdapter) Capability() Capability { return CapabilityAnalyze }

func (a *AnalyzeAdapter) Invoke(ctx context.Context, req Request) Result {
	if len(req.ImageBytes) == 0 {
		return errResult(fmt.Errorf("analyze: no image provided"))
	}

	modelID := req.Model
	if modelID == "" {
		modelID = a.catalog.DefaultVisionModel
	}

	question := req.Prompt
	if question == "" {
		question = DefaultQuestion
	}

	resp, err := a.chat.GenerateContent(ctx, &visionchat.Request{
		Model: modelID,
		Messages: []visionchat.Message{
			{Role: "user", Parts: []visionchat.Part{
				{Text: question},
				{
					ImageDataURL:   EncodeDataURL(req.ImageBytes, req.ImageType),
					EphemeralCache: a.catalog.RequiresCacheControl(modelID),
				},
			}},
		},
	})
	if err != nil {
		a.l.Warnf(ctx, "analyze: vision call failed: %v", err)
		return errResult(err)
	}

	return Result{
		Kind:      KindText,
		Text:      resp.Text,
		ModelUsed: modelID,
	}
}
