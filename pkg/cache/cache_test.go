package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/homecare-api/pkg/circuitbreaker"
	"github.com/jwalitptl/homecare-api/pkg/metrics"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := metrics.New("test", prometheus.NewRegistry())
	c := NewMemory(time.Minute, time.Minute, m)

	_, err := c.Get(ctx, "nurse:1")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, c.Set(ctx, "nurse:1", []byte("BEGIN:VCALENDAR"), time.Minute))
	got, err := c.Get(ctx, "nurse:1")
	require.NoError(t, err)
	assert.Equal(t, []byte("BEGIN:VCALENDAR"), got)

	require.NoError(t, c.Delete(ctx, "nurse:1"))
	_, err = c.Get(ctx, "nurse:1")
	assert.ErrorIs(t, err, ErrMiss)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheOperations.WithLabelValues("memory", "get", "miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheOperations.WithLabelValues("memory", "get", "hit")))
}

func TestRedis(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	c, err := NewRedis(ctx, RedisConfig{URL: "redis://" + mr.Addr(), Prefix: "homecare:"}, nil)
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Get(ctx, "nurse:1")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, c.Set(ctx, "nurse:1", []byte("ics"), time.Minute))
	assert.True(t, mr.Exists("homecare:nurse:1"))

	got, err := c.Get(ctx, "nurse:1")
	require.NoError(t, err)
	assert.Equal(t, []byte("ics"), got)

	mr.FastForward(2 * time.Minute)
	_, err = c.Get(ctx, "nurse:1")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestRedisMissDoesNotTripBreaker(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	c := NewRedisFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "", nil)

	for i := 0; i < 10; i++ {
		_, err := c.Get(ctx, "absent")
		assert.ErrorIs(t, err, ErrMiss)
	}
	assert.Equal(t, circuitbreaker.StateClosed, c.cb.State())
}

func TestRedisUnreachable(t *testing.T) {
	_, err := NewRedis(context.Background(), RedisConfig{URL: "redis://127.0.0.1:1"}, nil)
	assert.Error(t, err)
}
