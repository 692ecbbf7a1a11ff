package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps snapshots in Redis, for deployments that already run it.
// Keys are stored without expiry; a snapshot is valid until overwritten.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore wraps an existing Redis client. The prefix namespaces the
// snapshot keys and may be empty.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + ":" + key
}

// Load returns the stored value for key or ErrNotFound.
func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %s from redis: %w", key, err)
	}
	return data, nil
}

// Save overwrites the value under key.
func (s *RedisStore) Save(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot %s to redis: %w", key, err)
	}
	return nil
}
