package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=cache.go -destination=mock_cache.go -package=cache

var ErrMiss = errors.New("cache miss")

// LoadTimeout bounds a shared load once it is detached from the caller that started it.
var LoadTimeout = 10 * time.Second

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Client is the subset of *redis.Client used by RedisCache.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type RedisCache struct {
	client Client
	ttl    time.Duration
}

func NewRedisCache(client Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Connect dials addr and checks the server answers PING.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte) error {
	return c.client.Set(ctx, key, value, c.ttl).Err()
}

// Remember returns the cached value for key or computes it with load and stores it.
// Concurrent loads of the same key share one call, which outlives the caller that
// started it so other waiters are not cancelled with it. A nil cache always loads.
func Remember[T any](ctx context.Context, c Cache, group *singleflight.Group, key string, load func(context.Context) (T, error)) (T, error) {
	if c == nil {
		return load(ctx)
	}

	var result T
	raw, err := c.Get(ctx, key)
	switch {
	case err == nil:
		if err = json.Unmarshal(raw, &result); err == nil {
			return result, nil
		}
		zap.L().Warn("discarding malformed cache entry", zap.String("key", key), zap.Error(err))
	case !errors.Is(err, ErrMiss):
		zap.L().Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}

	ch := group.DoChan(key, func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), LoadTimeout)
		defer cancel()

		value, err := load(loadCtx)
		if err != nil {
			return value, err
		}
		if raw, err := json.Marshal(value); err == nil {
			if err := c.Set(loadCtx, key, raw); err != nil {
				zap.L().Warn("cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
		return value, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return result, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return result, res.Err
	}
	return res.Val.(T), nil
}
