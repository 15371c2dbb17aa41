package task

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/hibiken/asynq"
)

func TestOptimiseMediaTask_RoundTrip(t *testing.T) {
	tk, err := NewOptimiseMediaTask("images", "dog_1.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tk.Type() != TypeOptimiseMedia {
		t.Errorf("type = %q; want %q", tk.Type(), TypeOptimiseMedia)
	}

	p, err := ParseOptimiseMediaPayload(tk)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Bucket != "images" || p.ObjectKey != "dog_1.png" {
		t.Errorf("payload = %+v", p)
	}
}

func TestParseOptimiseMediaPayload_Invalid(t *testing.T) {
	for _, payload := range []string{`not json`, `{"bucket":"images"}`} {
		if _, err := ParseOptimiseMediaPayload(asynq.NewTask(TypeOptimiseMedia, []byte(payload))); err == nil {
			t.Errorf("expected error for payload %s", payload)
		}
	}
}

func TestDispatcher_Enqueue(t *testing.T) {
	mr := miniredis.RunT(t)
	d := NewDispatcher(mr.Addr(), "")
	defer func() { _ = d.Close() }()

	if err := d.EnqueueOptimiseMedia(context.Background(), "images", "dog_1.png"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := NewNoopDispatcher().EnqueueOptimiseMedia(context.Background(), "images", "x.png"); err != nil {
		t.Errorf("noop dispatcher returned %v", err)
	}
}
