package database

import (
	"context"
	"fmt"
	"log"

	"salamatlab/internal/config"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis opens a Redis client and checks it with a PING.
func ConnectRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	log.Printf("[store][redis] connected addr=%s db=%d", cfg.Addr, cfg.DB)
	return client, nil
}
