package usecase

import (
	"context"
	"errors"
	"testing"

	"vision-gateway/internal/capability"
	"vision-gateway/internal/resultstore"
	"vision-gateway/internal/router"
)

func TestScore(t *testing.T) {
	ctx := context.Background()

	t.Run("Scores a stored result", func(t *testing.T) {
		env := newTestEnv(router.Decision{})
		id := env.results.Put(resultstore.Entry{
			Prompt:     "a castle at dusk",
			ImageBytes: []byte("generated-png"),
			ImageType:  "png",
			Action:     "generate",
		})

		out, err := env.uc.Score(ctx, router.ScoreInput{ResultID: id})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Prompt != "a castle at dusk" {
			t.Errorf("unexpected prompt: %s", out.Prompt)
		}
		if out.Report.OverallScore != 4 {
			t.Errorf("unexpected overall score: %v", out.Report.OverallScore)
		}
		if env.score.last.Prompt != "a castle at dusk" {
			t.Error("the judge must see the originating prompt")
		}
		if string(env.score.last.ImageBytes) != "generated-png" {
			t.Error("the judge must see the stored image bytes")
		}
	})

	t.Run("Judge model override forwarded", func(t *testing.T) {
		env := newTestEnv(router.Decision{})
		id := env.results.Put(resultstore.Entry{Prompt: "p", ImageBytes: []byte("png")})

		_, err := env.uc.Score(ctx, router.ScoreInput{ResultID: id, JudgeModel: "gpt-5"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if env.score.last.Model != "gpt-5" {
			t.Errorf("override not forwarded, got %q", env.score.last.Model)
		}
	})

	t.Run("Unknown result id", func(t *testing.T) {
		env := newTestEnv(router.Decision{})

		_, err := env.uc.Score(ctx, router.ScoreInput{ResultID: "gone"})
		if !errors.Is(err, router.ErrResultNotFound) {
			t.Fatalf("expected ErrResultNotFound, got %v", err)
		}
		if env.score.calls != 0 {
			t.Error("the judge must not run for unknown results")
		}
	})

	t.Run("Judge failure surfaces", func(t *testing.T) {
		env := newTestEnv(router.Decision{})
		upstream := errors.New("judge endpoint: unexpected status 503")
		env.score.result = capability.Result{Err: upstream}
		id := env.results.Put(resultstore.Entry{Prompt: "p", ImageBytes: []byte("png")})

		_, err := env.uc.Score(ctx, router.ScoreInput{ResultID: id})
		if !errors.Is(err, upstream) {
			t.Fatalf("expected the upstream error, got %v", err)
		}
	})
}
