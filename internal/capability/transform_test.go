package capability

import (
	"context"
	"errors"
	"testing"

	"vision-gateway/pkg/log"
	"vision-gateway/pkg/mlserving"
)

type mockImg2Img struct {
	response *mlserving.Response
	err      error
	lastReq  *mlserving.Request
}

func (m *mockImg2Img) Transform(ctx context.Context, req *mlserving.Request) (*mlserving.Response, error) {
	m.lastReq = req
	return m.response, m.err
}

func TestTransformAdapter_Invoke(t *testing.T) {
	img2img := &mockImg2Img{response: &mlserving.Response{ImageBytes: []byte("out-png")}}
	adapter := NewTransformAdapter(img2img, log.NewNop())

	res := adapter.Invoke(context.Background(), Request{
		Prompt:     "make it a watercolor painting",
		ImageBytes: []byte("in-jpeg"),
		ImageType:  "jpeg",
	})

	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Kind != KindImage || string(res.ImageBytes) != "out-png" {
		t.Errorf("unexpected payload: kind=%s", res.Kind)
	}
	if res.ImageType != "png" {
		t.Errorf("output is always png, got %s", res.ImageType)
	}
	if res.ModelUsed != TransformModelID {
		t.Errorf("unexpected model: %s", res.ModelUsed)
	}
	if img2img.lastReq.Prompt != "make it a watercolor painting" {
		t.Errorf("prompt not forwarded: %q", img2img.lastReq.Prompt)
	}
	if string(img2img.lastReq.InitImage) != "in-jpeg" {
		t.Error("init image not forwarded")
	}
}

func TestTransformAdapter_Errors(t *testing.T) {
	t.Run("No image", func(t *testing.T) {
		adapter := NewTransformAdapter(&mockImg2Img{}, log.NewNop())
		res := adapter.Invoke(context.Background(), Request{Prompt: "p"})
		if res.Err == nil {
			t.Fatal("expected error without image")
		}
	})

	t.Run("Transport error contained", func(t *testing.T) {
		img2img := &mockImg2Img{err: errors.New("connection refused")}
		adapter := NewTransformAdapter(img2img, log.NewNop())
		res := adapter.Invoke(context.Background(), Request{Prompt: "p", ImageBytes: []byte("x")})
		if res.Err == nil {
			t.Fatal("expected contained error")
		}
	})
}
