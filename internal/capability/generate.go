package capability

import (
	"context"

	"vision-gateway/pkg/imagegen"
	"vision-gateway/pkg/log"
)

// GenerateAdapter creates images from text prompts via the text-to-image
// endpoint.
type GenerateAdapter struct {
	gen imagegen.IImageGen
	l   log.Logger
}

// NewGenerateAdapter creates the text-to-image adapter.
func NewGenerateAdapter(gen imagegen.IImageGen, l log.Logger) *GenerateAdapter {
	return &GenerateAdapter{gen: gen, l: l}
}

func (g *GenerateAdapter) Capability() Capability { return CapabilityGenerate }

func (g *GenerateAdapter) Invoke(ctx context.Context, req Request) Result {
	resp, err := g.gen.Generate(ctx, &imagegen.Request{
		Model:  req.Model,
		Prompt: req.Prompt,
	})
	if err != nil {
		g.l.Warnf(ctx, "generate: image generation failed: %v", err)
		return errResult(err)
	}

	return Result{
		Kind:       KindImage,
		ImageBytes: resp.ImageBytes,
		ImageType:  "png",
		ModelUsed:  resp.ModelUsed,
		Metadata: map[string]any{
			"prompt":            req.Prompt,
			"output_image_size": len(resp.ImageBytes),
		},
	}
}
