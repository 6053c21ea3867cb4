package usecase

import (
	"context"
	"fmt"

	"vision-gateway/internal/capability"
	"vision-gateway/internal/model"
	"vision-gateway/internal/router"
)

// Manual implements router.UseCase. The classifier is bypassed; the caller
// picks the vision model explicitly.
func (uc *implUseCase) Manual(ctx context.Context, input router.ManualInput) (router.ManualOutput, error) {
	if len(input.ImageBytes) == 0 {
		return router.ManualOutput{}, router.ErrImageRequired
	}

	modelID := input.Model
	if modelID == "" {
		modelID = uc.catalog.DefaultVisionModel
	}
	m, ok := uc.catalog.Lookup(modelID)
	if !ok || m.Type != model.ModelTypeVision {
		return router.ManualOutput{}, fmt.Errorf("%w: %s", router.ErrUnknownModel, modelID)
	}

	result := uc.adapters[router.IntentAnalyze].Invoke(ctx, capability.Request{
		Prompt:     input.Prompt,
		ImageBytes: input.ImageBytes,
		ImageType:  input.ImageType,
		Model:      modelID,
	})
	if result.Err != nil {
		return router.ManualOutput{}, fmt.Errorf("usecase.router.Manual.Invoke: %w", result.Err)
	}

	return router.ManualOutput{
		Answer:    result.Text,
		ModelUsed: result.ModelUsed,
	}, nil
}
