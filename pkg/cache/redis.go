package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jwalitptl/homecare-api/pkg/circuitbreaker"
	"github.com/jwalitptl/homecare-api/pkg/metrics"
)

type RedisConfig struct {
	URL          string
	Prefix       string
	PoolSize     int
	MinIdleConns int
	MaxRetries   int
}

// Redis is a shared cache. Calls go through a circuit breaker so an
// unreachable server fails fast instead of stalling requests.
type Redis struct {
	client  *redis.Client
	cb      *circuitbreaker.CircuitBreaker
	prefix  string
	metrics *metrics.Metrics
}

func NewRedis(ctx context.Context, cfg RedisConfig, m *metrics.Metrics) (*Redis, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if cfg.MinIdleConns > 0 {
		opts.MinIdleConns = cfg.MinIdleConns
	}
	opts.MaxRetries = cfg.MaxRetries

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisFromClient(client, cfg.Prefix, m), nil
}

func NewRedisFromClient(client *redis.Client, prefix string, m *metrics.Metrics) *Redis {
	return &Redis{
		client: client,
		cb: circuitbreaker.NewCircuitBreaker(circuitbreaker.Settings{
			Name:        "redis-cache",
			MaxFailures: 5,
			Timeout:     10 * time.Second,
		}),
		prefix:  prefix,
		metrics: m,
	}
}

func (c *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	var value []byte
	var miss bool

	err := c.cb.Execute(func() error {
		v, err := c.client.Get(ctx, c.prefix+key).Bytes()
		if errors.Is(err, redis.Nil) {
			miss = true
			return nil
		}
		value = v
		return err
	})
	if err == nil && miss {
		err = ErrMiss
	}

	c.metrics.ObserveCache("redis", "get", result(err), time.Since(start))
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (c *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	start := time.Now()
	err := c.cb.Execute(func() error {
		return c.client.Set(ctx, c.prefix+key, value, ttl).Err()
	})
	c.metrics.ObserveCache("redis", "set", result(err), time.Since(start))
	return err
}

func (c *Redis) Delete(ctx context.Context, key string) error {
	return c.cb.Execute(func() error {
		return c.client.Del(ctx, c.prefix+key).Err()
	})
}

func (c *Redis) Close() error {
	return c.client.Close()
}
