package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"salamatlab/internal/domain/entities"
	"salamatlab/internal/usecase/interfaces"
)

var (
	ErrEmptyUserID     = errors.New("empty user id")
	ErrLedgerCorrupted = errors.New("stored ledger is not a valid request array")
)

const DefaultLedgerKeyPrefix = "requests_"

// RequestLedgerRepository keeps each user's requests as one JSON array under
// "requests_{user_id}" in a key-value store.
//
// Append is a full read-modify-write. A per-key lock serialises writers in
// this process so concurrent appends for one user never lose a record.
// A key's lock lives only while some Append holds or waits on it.
type RequestLedgerRepository struct {
	store     interfaces.IKeyValueStore
	keyPrefix string

	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	sync.Mutex
	refs int
}

var _ interfaces.IRequestLedger = (*RequestLedgerRepository)(nil)

// NewRequestLedgerRepository builds a ledger over store. An empty keyPrefix
// falls back to DefaultLedgerKeyPrefix.
func NewRequestLedgerRepository(store interfaces.IKeyValueStore, keyPrefix string) *RequestLedgerRepository {
	if keyPrefix == "" {
		keyPrefix = DefaultLedgerKeyPrefix
	}
	return &RequestLedgerRepository{
		store:     store,
		keyPrefix: keyPrefix,
		locks:     map[string]*keyLock{},
	}
}

// LedgerKey is the store key holding userID's requests.
func (r *RequestLedgerRepository) LedgerKey(userID string) string {
	return r.keyPrefix + userID
}

func (r *RequestLedgerRepository) Append(ctx context.Context, userID string, record entities.RequestRecord) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ErrEmptyUserID
	}
	key := r.LedgerKey(userID)

	lock := r.acquire(key)
	defer r.release(key, lock)

	records := []entities.RequestRecord{}
	raw, err := r.store.Get(ctx, key)
	switch {
	case errors.Is(err, interfaces.ErrKeyNotFound):
	case err != nil:
		return fmt.Errorf("read %s: %w", key, err)
	case len(raw) > 0:
		if err := json.Unmarshal(raw, &records); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrLedgerCorrupted, key, err)
		}
	}

	records = append(records, record)
	b, err := json.Marshal(records)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, key, b); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	log.Printf("[ledger][repository] append success key=%s request_id=%s size=%d", key, record.ID, len(records))
	return nil
}

// List returns the user's records in append order. Absent, unreadable or
// malformed data yields an empty slice and no error.
func (r *RequestLedgerRepository) List(ctx context.Context, userID string) ([]entities.RequestRecord, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	key := r.LedgerKey(userID)

	records := []entities.RequestRecord{}
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, interfaces.ErrKeyNotFound) {
			log.Printf("[ledger][repository] read failed key=%s err=%v", key, err)
		}
		return records, nil
	}
	if len(raw) == 0 {
		return records, nil
	}
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Printf("[ledger][repository] malformed ledger key=%s err=%v", key, err)
		return []entities.RequestRecord{}, nil
	}
	return records, nil
}

func (r *RequestLedgerRepository) acquire(key string) *keyLock {
	r.mu.Lock()
	l, ok := r.locks[key]
	if !ok {
		l = &keyLock{}
		r.locks[key] = l
	}
	l.refs++
	r.mu.Unlock()

	l.Lock()
	return l
}

func (r *RequestLedgerRepository) release(key string, l *keyLock) {
	l.Unlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(r.locks, key)
	}
}

func (r *RequestLedgerRepository) lockCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.locks)
}
