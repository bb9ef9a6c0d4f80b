package ctxutil

import (
	"context"
	"testing"
)

func TestWithCaller_And_CallerFromCtx(t *testing.T) {
	t.Parallel()

	ctx := WithCaller(context.Background(), "GALICE")

	got, ok := CallerFromCtx(ctx)
	if !ok {
		t.Fatal("expected ok=true for a set caller")
	}
	if got != "GALICE" {
		t.Fatalf("expected GALICE, got %s", got)
	}
}

func TestCallerFromCtx_EmptyContext(t *testing.T) {
	t.Parallel()

	got, ok := CallerFromCtx(context.Background())
	if ok {
		t.Fatal("expected ok=false for empty context")
	}
	if got != "" {
		t.Fatalf("expected empty caller, got %q", got)
	}
}

func TestCallerFromCtx_Blank(t *testing.T) {
	t.Parallel()

	ctx := WithCaller(context.Background(), "   ")

	if _, ok := CallerFromCtx(ctx); ok {
		t.Fatal("expected ok=false for blank caller")
	}
}

func TestCallerFromCtx_WrongType(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), callerKey, 42)

	if _, ok := CallerFromCtx(ctx); ok {
		t.Fatal("expected ok=false for wrong type")
	}
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty request id, got %q", got)
	}

	ctx := WithRequestID(context.Background(), "req-1")
	if got := RequestIDFromCtx(ctx); got != "req-1" {
		t.Fatalf("expected req-1, got %q", got)
	}
}
