package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/diillson/lease-exit-go/internal/domain/entity"
	"github.com/diillson/lease-exit-go/internal/domain/repository"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "lease-exit:report:"

// RedisCache keeps reports as JSON in Redis.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects lazily; the first command dials addr.
func NewRedisCache(addr string) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 2 * time.Second,
		ReadTimeout: 2 * time.Second,
	})
	return &RedisCache{client: rdb}
}

var _ repository.CacheRepository = (*RedisCache)(nil)

func (r *RedisCache) Get(ctx context.Context, key string) (*entity.Report, bool, error) {
	val, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading cached report: %w", err)
	}

	var report entity.Report
	if err := json.Unmarshal(val, &report); err != nil {
		return nil, false, fmt.Errorf("decoding cached report: %w", err)
	}
	return &report, true, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, report entity.Report, ttl time.Duration) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := r.client.Set(ctx, keyPrefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("caching report: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (r *RedisCache) Close() error {
	return r.client.Close()
}
