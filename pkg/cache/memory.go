package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/jwalitptl/homecare-api/pkg/metrics"
)

// Memory is a process local cache. Entries are lost on restart and are not
// shared between replicas.
type Memory struct {
	store   *gocache.Cache
	metrics *metrics.Metrics
}

func NewMemory(defaultTTL, cleanupInterval time.Duration, m *metrics.Metrics) *Memory {
	return &Memory{
		store:   gocache.New(defaultTTL, cleanupInterval),
		metrics: m,
	}
}

func (c *Memory) Get(_ context.Context, key string) ([]byte, error) {
	start := time.Now()
	var err error
	defer func() { c.metrics.ObserveCache("memory", "get", result(err), time.Since(start)) }()

	v, found := c.store.Get(key)
	if !found {
		err = ErrMiss
		return nil, err
	}
	return v.([]byte), nil
}

func (c *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	start := time.Now()
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	c.store.Set(key, value, ttl)
	c.metrics.ObserveCache("memory", "set", "hit", time.Since(start))
	return nil
}

func (c *Memory) Delete(_ context.Context, key string) error {
	c.store.Delete(key)
	return nil
}
