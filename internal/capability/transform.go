package capability

import (
	"context"
	"fmt"

	"vision-gateway/pkg/log"
	"vision-gateway/pkg/mlserving"
)

// TransformModelID identifies the image-to-image serving endpoint in results.
const TransformModelID = "kandinsky-controlnet-img2img"

// TransformAdapter rewrites an attached image according to the prompt via the
// image-to-image serving endpoint.
type TransformAdapter struct {
	img2img mlserving.IImageToImage
	l       log.Logger
}

// NewTransformAdapter creates the image-to-image adapter.
func NewTransformAdapter(img2img mlserving.IImageToImage, l log.Logger) *TransformAdapter {
	return &TransformAdapter{img2img: img2img, l: l}
}

func (t *TransformAdapter) Capability() Capability { return CapabilityTransform }

func (t *TransformAdapter) Invoke(ctx context.Context, req Request) Result {
	if len(req.ImageBytes) == 0 {
		return errResult(fmt.Errorf("transform: no image provided"))
	}

	resp, err := t.img2img.Transform(ctx, &mlserving.Request{
		Prompt:    req.Prompt,
		InitImage: req.ImageBytes,
	})
	if err != nil {
		t.l.Warnf(ctx, "transform: image-to-image call failed: %v", err)
		return errResult(err)
	}

	return Result{
		Kind:       KindImage,
		ImageBytes: resp.ImageBytes,
		// The serving endpoint returns PNG regardless of the input type.
		ImageType: "png",
		ModelUsed: TransformModelID,
		Metadata: map[string]any{
			"prompt":            req.Prompt,
			"input_image_size":  len(req.ImageBytes),
			"output_image_size": len(resp.ImageBytes),
		},
	}
}
