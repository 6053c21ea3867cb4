package visionchat

import "time"

const (
	// DefaultModel is the default vision-capable chat model.
	DefaultModel = "claude-sonnet-4"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 60 * time.Second
)
