package usecase

import (
	"context"
	"fmt"

	"vision-gateway/internal/capability"
	"vision-gateway/internal/resultstore"
	"vision-gateway/internal/router"
)

// Route implements router.UseCase. It classifies the submission once and
// dispatches it to exactly one capability adapter. Upstream failures stay
// inside RouteOutput.Result.Err; the returned error is reserved for domain
// and configuration failures.
func (uc *implUseCase) Route(ctx context.Context, input router.RouteInput) (router.RouteOutput, error) {
	hasImage := len(input.ImageBytes) > 0

	if input.Prompt == "" && !hasImage {
		return router.RouteOutput{}, router.ErrEmptyPrompt
	}

	// A base64 image embedded in the prompt text is surfaced directly,
	// without calling any model.
	if !hasImage {
		if out, handled := uc.decodeEmbeddedImage(ctx, input.Prompt); handled {
			return out, nil
		}
	}

	decision, err := uc.classifier.Classify(ctx, input.Prompt, hasImage)
	if err != nil {
		return router.RouteOutput{}, fmt.Errorf("usecase.router.Route.Classify: %w", err)
	}

	uc.l.Infof(ctx, "routing decision: intent=%s reasoning=%q", decision.Intent, decision.Reasoning)

	out := router.RouteOutput{
		Action:    string(decision.Intent),
		Reasoning: decision.Reasoning,
	}

	adapter, ok := uc.adapters[decision.Intent]
	if !ok || adapter == nil {
		uc.l.Errorf(ctx, "no adapter registered for intent %q", decision.Intent)
		return router.RouteOutput{}, fmt.Errorf("usecase.router.Route: %w: %s", router.ErrNoAdapter, decision.Intent)
	}

	// Intents that operate on an existing image degrade in-band when no
	// image was attached.
	if !hasImage && decision.Intent != router.IntentGenerate {
		out.Result = capability.Result{Err: router.ErrImageRequired}
		return out, nil
	}

	req := capability.Request{
		Prompt:     input.Prompt,
		ImageBytes: input.ImageBytes,
		ImageType:  input.ImageType,
	}
	if decision.Intent == router.IntentAnalyze {
		req.Model = input.VisionModel
	}

	out.Result = adapter.Invoke(ctx, req)

	if out.Result.Err == nil && out.Result.Kind == capability.KindImage {
		out.ResultID = uc.results.Put(resultstore.Entry{
			Prompt:     input.Prompt,
			ImageBytes: out.Result.ImageBytes,
			ImageType:  out.Result.ImageType,
			ModelUsed:  out.Result.ModelUsed,
			Action:     out.Action,
		})
	}

	return out, nil
}

// decodeEmbeddedImage handles prompts that carry the image inline as base64.
// The second return is false when the prompt has no embedded payload.
func (uc *implUseCase) decodeEmbeddedImage(ctx context.Context, prompt string) (router.RouteOutput, bool) {
	encoded, imageType, found := detectBase64InPrompt(prompt)
	if !found {
		return router.RouteOutput{}, false
	}
	if imageType == "" {
		imageType = "jpeg"
	}

	out := router.RouteOutput{
		Action:    router.ActionDecodeBase64,
		Reasoning: "prompt contains embedded base64 image data",
	}

	raw, err := decodeBase64Image(encoded)
	if err != nil {
		uc.l.Warnf(ctx, "embedded base64 payload failed to decode: %v", err)
		out.Result = capability.Result{Err: fmt.Errorf("%w: %v", router.ErrBase64Decode, err)}
		return out, true
	}

	out.Result = capability.Result{
		Kind:       capability.KindImage,
		ImageBytes: raw,
		ImageType:  imageType,
		Metadata: map[string]any{
			"remaining_prompt": stripEmbeddedImage(prompt, encoded),
		},
	}
	return out, true
}
