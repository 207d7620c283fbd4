// Package cache provides cache.Store implementations.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/moneta-app/moneta/pkg/cache"
)

// RedisStore implements cache.Store on Redis. Keys are namespaced with a
// prefix so several deployments can share one instance.
type RedisStore struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisStore creates a RedisStore from redis options.
func NewRedisStore(opt *redis.Options, prefix string, logger *slog.Logger) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(opt),
		prefix: prefix,
		logger: logger.With("cache", "redis"),
	}
}

func (r *RedisStore) key(key string) string {
	return r.prefix + key
}

func (r *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		r.logger.Debug("cache miss", "key", key)
		return nil, nil
	}
	if err != nil {
		r.logger.Error("cache get error", "key", key, "error", err)
		return nil, err
	}
	r.logger.Debug("cache hit", "key", key)
	return val, nil
}

func (r *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.key(key), value, ttl).Err(); err != nil {
		r.logger.Error("cache set error", "key", key, "error", err)
		return err
	}
	r.logger.Debug("cache set", "key", key, "ttl", ttl)
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		r.logger.Error("cache delete error", "key", key, "error", err)
		return err
	}
	return nil
}

var _ cache.Store = (*RedisStore)(nil)
