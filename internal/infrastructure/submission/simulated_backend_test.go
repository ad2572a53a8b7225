package submission

import (
	"context"
	"errors"
	"testing"
	"time"

	"salamatlab/internal/domain/entities"
)

func TestSimulatedBackend_Submit(t *testing.T) {
	t.Run("accepts after delay", func(t *testing.T) {
		b := NewSimulatedBackend(1500*time.Millisecond, false)
		var slept time.Duration
		b.sleep = func(d time.Duration) { slept = d }

		if err := b.Submit(context.Background(), entities.RequestRecord{ID: "r1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if slept != 1500*time.Millisecond {
			t.Fatalf("expected 1.5s delay, got %s", slept)
		}
	})

	t.Run("zero delay does not sleep", func(t *testing.T) {
		b := NewSimulatedBackend(0, false)
		b.sleep = func(time.Duration) { t.Fatalf("unexpected sleep") }

		if err := b.Submit(context.Background(), entities.RequestRecord{ID: "r1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("failure mode", func(t *testing.T) {
		b := NewSimulatedBackend(0, true)

		err := b.Submit(context.Background(), entities.RequestRecord{ID: "r1"})
		if !errors.Is(err, ErrSimulatedBackendFailure) {
			t.Fatalf("expected ErrSimulatedBackendFailure, got %v", err)
		}
	})
}
