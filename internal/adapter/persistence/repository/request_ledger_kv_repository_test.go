package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"salamatlab/internal/adapter/persistence/kvstore"
	"salamatlab/internal/domain/entities"
	"salamatlab/internal/usecase/interfaces"
	mock_interfaces "salamatlab/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func record(id string) entities.RequestRecord {
	return entities.RequestRecord{
		ID:        id,
		Type:      entities.RequestTypeCheckup,
		Package:   entities.PackageSnapshot{ID: "general_post_puberty", Title: "چکاپ عمومی - بعد از بلوغ", Price: "۸۵۰,۰۰۰"},
		Fields:    entities.Fields{entities.FieldPreferredDate: "2024-10-01"},
		Status:    entities.RequestStatusPending,
		CreatedAt: time.Date(2024, 10, 1, 9, 0, 0, 0, time.UTC),
		UserID:    "u1",
	}
}

func TestRequestLedgerRepository_AppendAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewRequestLedgerRepository(kvstore.NewMemoryStore(), "")

	got, err := repo.List(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}

	for _, id := range []string{"r1", "r2", "r3"} {
		if err := repo.Append(ctx, "u1", record(id)); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	got, err = repo.List(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	for i, id := range []string{"r1", "r2", "r3"} {
		if got[i].ID != id {
			t.Fatalf("expected append order, index %d is %s", i, got[i].ID)
		}
	}
	if got[0].Package.Title != "چکاپ عمومی - بعد از بلوغ" || !got[0].CreatedAt.Equal(record("r1").CreatedAt) {
		t.Fatalf("record did not round-trip: %#v", got[0])
	}
}

func TestRequestLedgerRepository_UsersAreIsolated(t *testing.T) {
	ctx := context.Background()
	repo := NewRequestLedgerRepository(kvstore.NewMemoryStore(), "")

	if err := repo.Append(ctx, "u1", record("a")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	other, err := repo.List(ctx, "u2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected u2 ledger to be empty, got %d", len(other))
	}
	if repo.LedgerKey("u1") != "requests_u1" {
		t.Fatalf("unexpected key %q", repo.LedgerKey("u1"))
	}
}

func TestRequestLedgerRepository_MalformedData(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := NewRequestLedgerRepository(store, "")
	_ = store.Set(ctx, "requests_u1", []byte(`{not json`))

	got, err := repo.List(ctx, "u1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %d", len(got))
	}

	err = repo.Append(ctx, "u1", record("r1"))
	if !errors.Is(err, ErrLedgerCorrupted) {
		t.Fatalf("expected ErrLedgerCorrupted, got %v", err)
	}
	raw, _ := store.Get(ctx, "requests_u1")
	if string(raw) != `{not json` {
		t.Fatalf("expected corrupted data to be left untouched, got %q", raw)
	}
}

func TestRequestLedgerRepository_StoreFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("list degrades to empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIKeyValueStore(ctrl)
		repo := NewRequestLedgerRepository(store, "")

		store.EXPECT().Get(gomock.Any(), "requests_u1").Return(nil, errors.New("unavailable"))

		got, err := repo.List(ctx, "u1")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected empty list, got %d", len(got))
		}
	})

	t.Run("append read error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIKeyValueStore(ctrl)
		repo := NewRequestLedgerRepository(store, "")

		store.EXPECT().Get(gomock.Any(), "requests_u1").Return(nil, errors.New("unavailable"))

		if err := repo.Append(ctx, "u1", record("r1")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("append write error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIKeyValueStore(ctrl)
		repo := NewRequestLedgerRepository(store, "")

		writeErr := errors.New("write failed")
		store.EXPECT().Get(gomock.Any(), "requests_u1").Return(nil, interfaces.ErrKeyNotFound)
		store.EXPECT().Set(gomock.Any(), "requests_u1", gomock.Any()).Return(writeErr)

		if err := repo.Append(ctx, "u1", record("r1")); !errors.Is(err, writeErr) {
			t.Fatalf("expected write error, got %v", err)
		}
	})
}

func TestRequestLedgerRepository_EmptyUserID(t *testing.T) {
	ctx := context.Background()
	repo := NewRequestLedgerRepository(kvstore.NewMemoryStore(), "")

	if err := repo.Append(ctx, "  ", record("r1")); !errors.Is(err, ErrEmptyUserID) {
		t.Fatalf("expected ErrEmptyUserID, got %v", err)
	}
	if _, err := repo.List(ctx, ""); !errors.Is(err, ErrEmptyUserID) {
		t.Fatalf("expected ErrEmptyUserID, got %v", err)
	}
}

func TestRequestLedgerRepository_ConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	repo := NewRequestLedgerRepository(kvstore.NewMemoryStore(), "")

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := repo.Append(ctx, "u1", record(fmt.Sprintf("r%d", i))); err != nil {
				t.Errorf("append: %v", err)
			}
		}(i)
	}
	wg.Wait()

	got, _ := repo.List(ctx, "u1")
	if len(got) != n {
		t.Fatalf("expected %d records, got %d", n, len(got))
	}
	if c := repo.lockCount(); c != 0 {
		t.Fatalf("expected key locks to be released, %d left", c)
	}
}

func TestRequestLedgerRepository_KeyLocksDoNotAccumulate(t *testing.T) {
	ctx := context.Background()
	repo := NewRequestLedgerRepository(kvstore.NewMemoryStore(), "")

	for i := 0; i < 50; i++ {
		if err := repo.Append(ctx, fmt.Sprintf("u%d", i), record("r1")); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if c := repo.lockCount(); c != 0 {
		t.Fatalf("expected no retained key locks, got %d", c)
	}
}

func TestRequestLedgerRepository_KeyPrefix(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := NewRequestLedgerRepository(store, "lab_requests_")

	if repo.LedgerKey("u1") != "lab_requests_u1" {
		t.Fatalf("unexpected key %q", repo.LedgerKey("u1"))
	}
	if err := repo.Append(ctx, "u1", record("r1")); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := store.Get(ctx, "lab_requests_u1"); err != nil {
		t.Fatalf("expected record under prefixed key: %v", err)
	}
	if _, err := store.Get(ctx, "requests_u1"); !errors.Is(err, interfaces.ErrKeyNotFound) {
		t.Fatalf("expected default key to stay empty, got %v", err)
	}
}
