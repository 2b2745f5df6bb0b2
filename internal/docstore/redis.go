package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

var _ Backend = (*RedisBackend)(nil)

const redisKeyPrefix = "workout::doc::"

// RedisBackend keeps every document as a plain string value without expiry.
type RedisBackend struct {
	redisClient *redis.Client
}

func NewRedisBackend(redisClient *redis.Client) *RedisBackend {
	return &RedisBackend{
		redisClient: redisClient,
	}
}

func RedisKey(name string) string {
	return redisKeyPrefix + name
}

func (b *RedisBackend) Get(ctx context.Context, name string) ([]byte, error) {
	val, err := b.redisClient.Get(ctx, RedisKey(name)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return []byte(val), nil
}

func (b *RedisBackend) Put(ctx context.Context, name string, data []byte) error {
	if err := b.redisClient.Set(ctx, RedisKey(name), string(data), 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
