package kvstore

import (
	"context"
	"testing"

	"salamatlab/internal/config"
)

func TestNewFromConfig(t *testing.T) {
	ctx := context.Background()

	store, closeFn, err := NewFromConfig(ctx, config.StoreConfig{Backend: config.StoreBackendMemory})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := store.(*MemoryStore); !ok {
		t.Fatalf("expected *MemoryStore, got %T", store)
	}
	if err := closeFn(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}

	_, closeFn, err = NewFromConfig(ctx, config.StoreConfig{Backend: "etcd"})
	if err == nil {
		t.Fatalf("expected error for unsupported backend")
	}
	if closeFn == nil {
		t.Fatalf("expected non-nil close func")
	}
}
