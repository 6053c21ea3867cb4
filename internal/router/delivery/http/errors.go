package http

import (
	"errors"

	"vision-gateway/internal/router"
	"vision-gateway/pkg/response"
)

// mapError translates domain errors into HTTP errors. Anything unmapped is an
// internal error; details stay in the logs, not the response.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, router.ErrEmptyPrompt):
		return response.NewHTTPError(400, "prompt or image is required")
	case errors.Is(err, router.ErrImageRequired):
		return response.NewHTTPError(400, "an image is required for this request")
	case errors.Is(err, router.ErrUnknownModel):
		return response.NewHTTPError(400, "unknown model identifier")
	case errors.Is(err, router.ErrBase64Decode):
		return response.NewHTTPError(400, "embedded image data could not be decoded")
	case errors.Is(err, router.ErrResultNotFound):
		return response.NewHTTPError(404, "result not found or expired")
	default:
		return response.NewHTTPError(500, response.DefaultErrorMessage)
	}
}
