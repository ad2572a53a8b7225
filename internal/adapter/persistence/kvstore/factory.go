package kvstore

import (
	"context"
	"fmt"
	"log"

	"salamatlab/internal/config"
	"salamatlab/internal/infrastructure/database"
	"salamatlab/internal/usecase/interfaces"
)

// NewFromConfig builds the configured store. The returned close func
// releases the underlying connection and is never nil.
func NewFromConfig(ctx context.Context, cfg config.StoreConfig) (interfaces.IKeyValueStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case "", config.StoreBackendMemory:
		log.Printf("[store][factory] using in-memory store")
		return NewMemoryStore(), noop, nil

	case config.StoreBackendRedis:
		client, err := database.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, noop, err
		}
		return NewRedisStore(client), client.Close, nil

	case config.StoreBackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, noop, err
		}
		log.Printf("[store][factory] using dynamodb table=%s", cfg.DynamoDB.Table)
		return NewDynamoStore(ddb, cfg.DynamoDB.Table), noop, nil

	case config.StoreBackendPostgres:
		db, err := database.ConnectPostgres(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, noop, err
		}
		store, err := NewPostgresStore(db, cfg.Postgres.Table)
		if err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		if err := store.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, noop, fmt.Errorf("ensure kv schema: %w", err)
		}
		return store, db.Close, nil

	default:
		return nil, noop, fmt.Errorf("unsupported store backend %q", cfg.Backend)
	}
}
