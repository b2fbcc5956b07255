package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const revokedTokenPrefix = "revokedToken:"

// NewRedisClient connects a Redis client and verifies the connection.
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s (db %d): %w", addr, db, err)
	}
	return client, nil
}

// DenylistToken records a revoked token hash until the token would have
// expired anyway.
func DenylistToken(ctx context.Context, client *redis.Client, tokenHash string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := client.Set(ctx, revokedTokenPrefix+tokenHash, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to denylist token: %w", err)
	}
	return nil
}

// IsTokenDenylisted reports whether the token hash was revoked.
func IsTokenDenylisted(ctx context.Context, client *redis.Client, tokenHash string) (bool, error) {
	n, err := client.Exists(ctx, revokedTokenPrefix+tokenHash).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token denylist: %w", err)
	}
	return n > 0, nil
}
