package router

import "errors"

// Domain-specific errors for the routing package.
var (
	ErrEmptyPrompt    = errors.New("prompt is empty")
	ErrImageRequired  = errors.New("an image is required for this request")
	ErrUnknownModel   = errors.New("unknown model identifier")
	ErrResultNotFound = errors.New("result not found or expired")
	ErrBase64Decode   = errors.New("failed to decode base64 image data")

	// ErrNoAdapter means the dispatcher received an intent with no registered
	// capability. The classifier's output set is closed, so reaching this is
	// a configuration error, fatal for the request.
	ErrNoAdapter = errors.New("no capability adapter registered for intent")
)
