package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"vision-gateway/internal/capability"
	"vision-gateway/internal/router"
)

func TestRoute_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty submission rejected", func(t *testing.T) {
		env := newTestEnv(router.Decision{Intent: router.IntentGenerate})

		_, err := env.uc.Route(ctx, router.RouteInput{})
		if !errors.Is(err, router.ErrEmptyPrompt) {
			t.Fatalf("expected ErrEmptyPrompt, got %v", err)
		}
		if env.classifier.calls != 0 {
			t.Error("classifier must not run for an empty submission")
		}
	})

	t.Run("Image without prompt is accepted", func(t *testing.T) {
		env := newTestEnv(router.Decision{Intent: router.IntentAnalyze})

		out, err := env.uc.Route(ctx, router.RouteInput{ImageBytes: []byte("jpg")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Action != "analyze" {
			t.Errorf("unexpected action: %s", out.Action)
		}
	})
}

func TestRoute_SingleDispatch(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name   string
		intent router.Intent
		input  router.RouteInput
		want   *stubAdapter
	}{
		{"generate", router.IntentGenerate, router.RouteInput{Prompt: "a castle"}, nil},
		{"analyze", router.IntentAnalyze, router.RouteInput{Prompt: "what is this?", ImageBytes: []byte("jpg")}, nil},
		{"transform", router.IntentTransform, router.RouteInput{Prompt: "make it a sketch", ImageBytes: []byte("jpg")}, nil},
		{"score", router.IntentScore, router.RouteInput{Prompt: "rate this", ImageBytes: []byte("jpg")}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(router.Decision{Intent: tc.intent, Reasoning: "test"})

			out, err := env.uc.Route(ctx, tc.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Action != string(tc.intent) {
				t.Errorf("action = %s, want %s", out.Action, tc.intent)
			}
			if env.totalAdapterCalls() != 1 {
				t.Errorf("exactly one adapter must be invoked, got %d calls", env.totalAdapterCalls())
			}
			if env.classifier.calls != 1 {
				t.Errorf("classifier must run exactly once, ran %d times", env.classifier.calls)
			}
		})
	}
}

func TestRoute_NoMemoization(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(router.Decision{Intent: router.IntentGenerate})

	input := router.RouteInput{Prompt: "a castle at dusk"}
	if _, err := env.uc.Route(ctx, input); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if _, err := env.uc.Route(ctx, input); err != nil {
		t.Fatalf("second call: %v", err)
	}

	if env.generate.calls != 2 {
		t.Errorf("identical submissions must each reach upstream, got %d calls", env.generate.calls)
	}
}

func TestRoute_TransportErrorContained(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(router.Decision{Intent: router.IntentGenerate})
	upstream := errors.New("endpoint: unexpected status 502")
	env.generate.result = capability.Result{Err: upstream}

	out, err := env.uc.Route(ctx, router.RouteInput{Prompt: "a castle"})
	if err != nil {
		t.Fatalf("transport failure must stay inside the result, got error %v", err)
	}
	if !errors.Is(out.Result.Err, upstream) {
		t.Errorf("Result.Err = %v, want the upstream error", out.Result.Err)
	}
	if out.ResultID != "" {
		t.Error("failed results must not be stored")
	}
}

func TestRoute_MissingImageDegradesInBand(t *testing.T) {
	ctx := context.Background()

	for _, intent := range []router.Intent{router.IntentAnalyze, router.IntentTransform, router.IntentScore} {
		t.Run(string(intent), func(t *testing.T) {
			env := newTestEnv(router.Decision{Intent: intent})

			out, err := env.uc.Route(ctx, router.RouteInput{Prompt: "do something"})
			if err != nil {
				t.Fatalf("missing image must not be fatal: %v", err)
			}
			if !errors.Is(out.Result.Err, router.ErrImageRequired) {
				t.Errorf("Result.Err = %v, want ErrImageRequired", out.Result.Err)
			}
			if env.totalAdapterCalls() != 0 {
				t.Error("no adapter may run without the required image")
			}
		})
	}
}

func TestRoute_StoresGeneratedResults(t *testing.T) {
	ctx := context.Background()

	t.Run("Generate result becomes scoreable", func(t *testing.T) {
		env := newTestEnv(router.Decision{Intent: router.IntentGenerate})

		out, err := env.uc.Route(ctx, router.RouteInput{Prompt: "a castle"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.ResultID == "" {
			t.Fatal("image results must carry a result id")
		}

		entry, ok := env.results.Get(out.ResultID)
		if !ok {
			t.Fatal("stored entry must resolve")
		}
		if entry.Prompt != "a castle" || string(entry.ImageBytes) != "generated-png" {
			t.Errorf("unexpected stored entry: %+v", entry)
		}
	})

	t.Run("Text result is not stored", func(t *testing.T) {
		env := newTestEnv(router.Decision{Intent: router.IntentAnalyze})

		out, err := env.uc.Route(ctx, router.RouteInput{Prompt: "what is it", ImageBytes: []byte("jpg")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.ResultID != "" {
			t.Error("text answers are not scoreable")
		}
		if env.results.Len() != 0 {
			t.Error("store must stay empty")
		}
	})
}

func TestRoute_ModelOverrideReachesAnalyzeOnly(t *testing.T) {
	ctx := context.Background()

	env := newTestEnv(router.Decision{Intent: router.IntentAnalyze})
	_, err := env.uc.Route(ctx, router.RouteInput{
		Prompt: "what is this?", ImageBytes: []byte("jpg"), VisionModel: "gpt-5",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.analyze.last.Model != "gpt-5" {
		t.Errorf("analyze override not forwarded, got %q", env.analyze.last.Model)
	}

	env = newTestEnv(router.Decision{Intent: router.IntentTransform})
	_, err = env.uc.Route(ctx, router.RouteInput{
		Prompt: "make it a sketch", ImageBytes: []byte("jpg"), VisionModel: "gpt-5",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.transform.last.Model != "" {
		t.Errorf("override must not leak to other capabilities, got %q", env.transform.last.Model)
	}
}

func TestRoute_EmbeddedBase64(t *testing.T) {
	ctx := context.Background()

	t.Run("Data URL decoded without a model call", func(t *testing.T) {
		env := newTestEnv(router.Decision{Intent: router.IntentGenerate})
		payload := base64.StdEncoding.EncodeToString([]byte("raw-image-bytes"))

		out, err := env.uc.Route(ctx, router.RouteInput{
			Prompt: "here you go: data:image/png;base64," + payload,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Action != router.ActionDecodeBase64 {
			t.Fatalf("action = %s, want %s", out.Action, router.ActionDecodeBase64)
		}
		if string(out.Result.ImageBytes) != "raw-image-bytes" || out.Result.ImageType != "png" {
			t.Errorf("unexpected decoded payload: type=%s", out.Result.ImageType)
		}
		if env.classifier.calls != 0 || env.totalAdapterCalls() != 0 {
			t.Error("embedded payloads must not reach the classifier or any adapter")
		}
	})

	t.Run("Raw payload decoded", func(t *testing.T) {
		env := newTestEnv(router.Decision{Intent: router.IntentGenerate})
		payload := base64.StdEncoding.EncodeToString([]byte(strings.Repeat("image-data", 12)))

		out, err := env.uc.Route(ctx, router.RouteInput{Prompt: payload})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Action != router.ActionDecodeBase64 {
			t.Fatalf("action = %s, want %s", out.Action, router.ActionDecodeBase64)
		}
		if out.Result.ImageType != "jpeg" {
			t.Errorf("raw payloads default to jpeg, got %s", out.Result.ImageType)
		}
	})

	t.Run("Padded raw payload decoded", func(t *testing.T) {
		env := newTestEnv(router.Decision{Intent: router.IntentGenerate})
		// 100 bytes encode to 136 characters ending in "==".
		raw := bytes.Repeat([]byte{0xca}, 100)
		payload := base64.StdEncoding.EncodeToString(raw)
		if !strings.HasSuffix(payload, "=") {
			t.Fatal("test payload must carry padding")
		}

		out, err := env.uc.Route(ctx, router.RouteInput{Prompt: payload})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Action != router.ActionDecodeBase64 {
			t.Fatalf("action = %s, want %s", out.Action, router.ActionDecodeBase64)
		}
		if out.Result.Err != nil {
			t.Fatalf("padded payload must decode: %v", out.Result.Err)
		}
		if !bytes.Equal(out.Result.ImageBytes, raw) {
			t.Error("decoded bytes must round-trip")
		}
	})

	t.Run("Corrupt payload degrades in-band", func(t *testing.T) {
		env := newTestEnv(router.Decision{Intent: router.IntentGenerate})

		// Five characters is an invalid base64 length.
		out, err := env.uc.Route(ctx, router.RouteInput{
			Prompt: "data:image/png;base64,AAAAA",
		})
		if err != nil {
			t.Fatalf("decode failure must not be fatal: %v", err)
		}
		if out.Action != router.ActionDecodeBase64 {
			t.Fatalf("action = %s, want %s", out.Action, router.ActionDecodeBase64)
		}
		if !errors.Is(out.Result.Err, router.ErrBase64Decode) {
			t.Errorf("Result.Err = %v, want ErrBase64Decode", out.Result.Err)
		}
	})

	t.Run("Attached image disables prompt scanning", func(t *testing.T) {
		env := newTestEnv(router.Decision{Intent: router.IntentAnalyze})
		payload := base64.StdEncoding.EncodeToString([]byte(strings.Repeat("image-data", 12)))

		out, err := env.uc.Route(ctx, router.RouteInput{
			Prompt: payload, ImageBytes: []byte("jpg"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Action != "analyze" {
			t.Errorf("attached image takes precedence, got action %s", out.Action)
		}
	})
}

func TestRoute_UnknownIntentIsFatal(t *testing.T) {
	env := newTestEnv(router.Decision{Intent: router.Intent("summarize")})

	_, err := env.uc.Route(context.Background(), router.RouteInput{Prompt: "hi"})
	if !errors.Is(err, router.ErrNoAdapter) {
		t.Fatalf("expected ErrNoAdapter, got %v", err)
	}
	if env.totalAdapterCalls() != 0 {
		t.Error("no adapter may run for an unregistered intent")
	}
}
