package interfaces

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

// IKeyValueStore abstracts the durable key-value store behind the request
// ledger. Get returns ErrKeyNotFound for absent keys.
type IKeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
}
