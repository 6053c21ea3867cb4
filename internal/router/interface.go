package router

import "context"

// UseCase defines the business logic interface for the routing domain.
type UseCase interface {
	// Route classifies the submission and dispatches it to exactly one
	// capability adapter. Upstream failures come back inside
	// RouteOutput.Result.Err; the returned error is reserved for domain and
	// configuration failures.
	Route(ctx context.Context, input RouteInput) (RouteOutput, error)

	// Manual performs a vision query against an explicitly chosen model,
	// bypassing the classifier.
	Manual(ctx context.Context, input ManualInput) (ManualOutput, error)

	// Score evaluates a previously generated result with the judge model.
	Score(ctx context.Context, input ScoreInput) (ScoreOutput, error)
}
