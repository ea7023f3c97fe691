package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestEnsureSchemaSucceedsFirstTry(t *testing.T) {
	calls := 0
	err := EnsureSchema(context.Background(), func(context.Context) error {
		calls++
		return nil
	}, 5, time.Millisecond, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 attempt, got %d", calls)
	}
}

func TestEnsureSchemaRetriesThenSucceeds(t *testing.T) {
	calls := 0
	boom := errors.New("connection refused")
	err := EnsureSchema(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return boom
		}
		return nil
	}, 5, time.Millisecond, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
}

func TestEnsureSchemaExhaustsAttempts(t *testing.T) {
	calls := 0
	boom := errors.New("connection refused")
	err := EnsureSchema(context.Background(), func(context.Context) error {
		calls++
		return boom
	}, 5, time.Millisecond, zap.NewNop())
	if !errors.Is(err, boom) {
		t.Fatalf("expected last error after exhaustion, got %v", err)
	}
	if calls != 5 {
		t.Fatalf("expected exactly 5 attempts, got %d", calls)
	}
}

func TestEnsureSchemaStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := EnsureSchema(ctx, func(context.Context) error {
		calls++
		cancel()
		return errors.New("still down")
	}, 5, time.Minute, zap.NewNop())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected retry loop to stop after cancel, got %d attempts", calls)
	}
}
