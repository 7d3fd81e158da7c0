package health

import (
	"context"
	"errors"
	"testing"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestStatusWithoutDatabase(t *testing.T) {
	payload, ok := NewService(nil).Status(context.Background())
	if !ok || payload["store"] != "memory" {
		t.Fatalf("unexpected status %v %v", payload, ok)
	}
}

func TestStatusPingsDatabase(t *testing.T) {
	up := NewService(pingFunc(func(ctx context.Context) error {
		if _, ok := ctx.Deadline(); !ok {
			t.Fatalf("expected ping deadline")
		}
		return nil
	}))
	if payload, ok := up.Status(context.Background()); !ok || payload["database"] != "up" {
		t.Fatalf("unexpected status %v %v", payload, ok)
	}

	down := NewService(pingFunc(func(context.Context) error { return errors.New("refused") }))
	if payload, ok := down.Status(context.Background()); ok || payload["database"] != "down" {
		t.Fatalf("unexpected status %v %v", payload, ok)
	}
}
