package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/DanielPopoola/onlinepayments-gateway/internal/application"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/config"
	"github.com/DanielPopoola/onlinepayments-gateway/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "idem:"
	// InProgressExpiry bounds how long a crashed request can hold a key.
	InProgressExpiry = 30 * time.Second
)

// RedisStore implements application.IdempotencyStore.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(cfg config.RedisConfig) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return NewRedisStoreWithClient(rdb, cfg.TTL)
}

func NewRedisStoreWithClient(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

// Acquire marks key as in progress with SET NX. When the key already exists
// the stored record is returned instead.
func (r *RedisStore) Acquire(ctx context.Context, key, requestHash string) (*application.IdempotencyRecord, error) {
	payload, err := json.Marshal(application.IdempotencyRecord{RequestHash: requestHash})
	if err != nil {
		return nil, fmt.Errorf("encode idempotency record: %w", err)
	}

	set, err := r.client.SetNX(ctx, keyPrefix+key, payload, InProgressExpiry).Result()
	if err != nil {
		return nil, fmt.Errorf("redis SETNX error: %w", err)
	}
	if set {
		return nil, nil
	}

	record, err := r.get(ctx, key)
	if err != nil {
		return nil, err
	}
	if record == nil {
		// Expired between SETNX and GET.
		return r.Acquire(ctx, key, requestHash)
	}
	return record, nil
}

// Complete stores the final result for the configured TTL.
func (r *RedisStore) Complete(ctx context.Context, key, requestHash string, result *domain.Result) error {
	payload, err := json.Marshal(application.IdempotencyRecord{RequestHash: requestHash, Result: result})
	if err != nil {
		return fmt.Errorf("encode idempotency record: %w", err)
	}
	if err := r.client.Set(ctx, keyPrefix+key, payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis SET error: %w", err)
	}
	return nil
}

// Release drops an in-progress key so the request can be retried.
func (r *RedisStore) Release(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis DEL error: %w", err)
	}
	return nil
}

func (r *RedisStore) get(ctx context.Context, key string) (*application.IdempotencyRecord, error) {
	data, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis GET error: %w", err)
	}

	var record application.IdempotencyRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decode idempotency record: %w", err)
	}
	return &record, nil
}
