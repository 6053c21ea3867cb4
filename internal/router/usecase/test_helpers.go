package usecase

import (
	"context"
	"time"

	"vision-gateway/internal/capability"
	"vision-gateway/internal/model"
	"vision-gateway/internal/resultstore"
	"vision-gateway/internal/router"
	"vision-gateway/pkg/log"
)

// stubClassifier returns a fixed decision.
type stubClassifier struct {
	decision router.Decision
	err      error
	calls    int
}

func (s *stubClassifier) Classify(ctx context.Context, prompt string, hasImage bool) (router.Decision, error) {
	s.calls++
	return s.decision, s.err
}

// stubAdapter counts invocations and replays a canned result.
type stubAdapter struct {
	cap    capability.Capability
	result capability.Result
	calls  int
	last   capability.Request
}

func (s *stubAdapter) Capability() capability.Capability { return s.cap }

func (s *stubAdapter) Invoke(ctx context.Context, req capability.Request) capability.Result {
	s.calls++
	s.last = req
	return s.result
}

type testEnv struct {
	classifier *stubClassifier
	analyze    *stubAdapter
	generate   *stubAdapter
	transform  *stubAdapter
	score      *stubAdapter
	results    *resultstore.Store
	uc         router.UseCase
}

func newTestEnv(decision router.Decision) *testEnv {
	env := &testEnv{
		classifier: &stubClassifier{decision: decision},
		analyze: &stubAdapter{
			cap:    capability.CapabilityAnalyze,
			result: capability.Result{Kind: capability.KindText, Text: "a cat on a sofa", ModelUsed: "claude-sonnet-4"},
		},
		generate: &stubAdapter{
			cap: capability.CapabilityGenerate,
			result: capability.Result{
				Kind: capability.KindImage, ImageBytes: []byte("generated-png"),
				ImageType: "png", ModelUsed: "shutterstock-imageai",
			},
		},
		transform: &stubAdapter{
			cap: capability.CapabilityTransform,
			result: capability.Result{
				Kind: capability.KindImage, ImageBytes: []byte("transformed-png"),
				ImageType: "png", ModelUsed: capability.TransformModelID,
			},
		},
		score: &stubAdapter{
			cap: capability.CapabilityScore,
			result: capability.Result{
				Kind: capability.KindText, Text: "solid result", ModelUsed: "claude-sonnet-4",
				Scores: &capability.ScoreReport{
					Scores: map[string]capability.CriterionScore{
						"visual_quality": {Score: 4, Rationale: "sharp"},
					},
					OverallScore: 4,
					Summary:      "solid result",
				},
			},
		},
		results: resultstore.New(16, time.Minute),
	}
	env.uc = New(
		log.NewNop(),
		env.classifier,
		env.analyze,
		env.generate,
		env.transform,
		env.score,
		env.results,
		model.DefaultCatalog(),
	)
	return env
}

func (e *testEnv) totalAdapterCalls() int {
	return e.analyze.calls + e.generate.calls + e.transform.calls + e.score.calls
}
