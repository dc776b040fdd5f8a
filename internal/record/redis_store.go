package record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "streak:record:v1:"

// RedisStore keeps one JSON-encoded record per address key in Redis.
type RedisStore struct {
	cache *redis.Client
}

// NewRedisStore builds a Redis-backed record store.
func NewRedisStore(cache *redis.Client) *RedisStore {
	return &RedisStore{cache: cache}
}

// Load fetches the record for address, or the zero-default record when the
// key does not exist.
func (s *RedisStore) Load(ctx context.Context, address string) (UserRecord, error) {
	raw, err := s.cache.Get(ctx, redisKeyPrefix+address).Bytes()
	if errors.Is(err, redis.Nil) {
		return New(address), nil
	}
	if err != nil {
		return UserRecord{}, fmt.Errorf("%w: load %s: %v", ErrStorage, address, err)
	}
	var rec UserRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return UserRecord{}, fmt.Errorf("%w: decode %s: %v", ErrStorage, address, err)
	}
	if rec.Address == "" {
		rec.Address = address
	}
	return rec, nil
}

// Save overwrites the record for its address. No TTL: records are never
// deleted, only overwritten.
func (s *RedisStore) Save(ctx context.Context, rec UserRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrStorage, rec.Address, err)
	}
	if err := s.cache.Set(ctx, redisKeyPrefix+rec.Address, payload, 0).Err(); err != nil {
		return fmt.Errorf("%w: save %s: %v", ErrStorage, rec.Address, err)
	}
	return nil
}
