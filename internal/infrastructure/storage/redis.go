// internal/infrastructure/storage/redis.go
package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RedisStore persists storefront state in Redis. Every write is mirrored
// into an in-process Memory store, and reads fall back to that mirror when
// Redis is unreachable, so a storage outage degrades to per-process state
// instead of an error.
type RedisStore struct {
	client *redis.Client
	mirror *Memory
	log    *logrus.Logger
}

// NewRedisStore creates a Redis-backed store
func NewRedisStore(client *redis.Client, log *logrus.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		mirror: NewMemory(),
		log:    log,
	}
}

// Read fetches and unmarshals the value under key, reporting false on a
// miss. Backend failures are logged and served from the mirror.
func (s *RedisStore) Read(ctx context.Context, key string, dest interface{}) bool {
	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			s.log.WithError(err).WithField("key", key).Warn("storage read failed, using in-memory fallback")
		}
		// redis.Nil also falls through to the mirror: the value may have
		// been written while the backend was down.
		return s.mirror.Read(ctx, key, dest)
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("storage value corrupt, ignoring")
		return false
	}
	return true
}

// Write stores the JSON encoding of value under key with the given TTL
func (s *RedisStore) Write(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	s.mirror.Write(ctx, key, value, ttl)

	data, err := json.Marshal(value)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Warn("storage value not serializable")
		return
	}

	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("storage write failed, kept in memory only")
	}
}

// Delete removes the given keys from Redis and the mirror
func (s *RedisStore) Delete(ctx context.Context, keys ...string) {
	s.mirror.Delete(ctx, keys...)

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		s.log.WithError(err).WithField("keys", keys).Warn("storage delete failed")
	}
}
