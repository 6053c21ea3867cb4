package usecase

import (
	"context"
	"fmt"

	"vision-gateway/internal/capability"
	"vision-gateway/internal/router"
)

// Score implements router.UseCase. The image and its originating prompt are
// looked up from the result store; the judge never sees stale identifiers.
func (uc *implUseCase) Score(ctx context.Context, input router.ScoreInput) (router.ScoreOutput, error) {
	entry, ok := uc.results.Get(input.ResultID)
	if !ok {
		return router.ScoreOutput{}, fmt.Errorf("%w: %s", router.ErrResultNotFound, input.ResultID)
	}

	result := uc.adapters[router.IntentScore].Invoke(ctx, capability.Request{
		Prompt:     entry.Prompt,
		ImageBytes: entry.ImageBytes,
		ImageType:  entry.ImageType,
		Model:      input.JudgeModel,
	})
	if result.Err != nil {
		return router.ScoreOutput{}, fmt.Errorf("usecase.router.Score.Invoke: %w", result.Err)
	}
	if result.Scores == nil {
		return router.ScoreOutput{}, fmt.Errorf("usecase.router.Score: judge returned no report")
	}

	return router.ScoreOutput{
		Report: *result.Scores,
		Prompt: entry.Prompt,
	}, nil
}
