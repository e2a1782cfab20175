package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewWithClient(client), mr
}

type statsPayload struct {
	CustomerID    string `json:"customer_id"`
	TotalPolicies int    `json:"total_policies"`
}

func TestSetAndGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	in := statsPayload{CustomerID: "abc", TotalPolicies: 3}
	require.NoError(t, c.Set(ctx, StatsKey("abc"), in, time.Minute))

	var out statsPayload
	require.NoError(t, c.Get(ctx, StatsKey("abc"), &out))
	assert.Equal(t, in, out)
}

func TestGetMiss(t *testing.T) {
	c, _ := newTestCache(t)

	var out statsPayload
	err := c.Get(context.Background(), StatsKey("missing"), &out)
	assert.True(t, errors.Is(err, ErrCacheMiss))
}

func TestGetOrSetComputesOnce(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	calls := 0
	compute := func() (interface{}, error) {
		calls++
		return statsPayload{CustomerID: "abc", TotalPolicies: 2}, nil
	}

	var out statsPayload
	require.NoError(t, c.GetOrSet(ctx, StatsKey("abc"), &out, time.Minute, compute))
	require.NoError(t, c.GetOrSet(ctx, StatsKey("abc"), &out, time.Minute, compute))

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, out.TotalPolicies)
}

func TestGetOrSetPropagatesComputeError(t *testing.T) {
	c, _ := newTestCache(t)

	wantErr := errors.New("db down")
	var out statsPayload
	err := c.GetOrSet(context.Background(), StatsKey("abc"), &out, time.Minute, func() (interface{}, error) {
		return nil, wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestTTLExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, StatsKey("abc"), statsPayload{TotalPolicies: 1}, time.Minute))
	mr.FastForward(2 * time.Minute)

	var out statsPayload
	err := c.Get(ctx, StatsKey("abc"), &out)
	assert.True(t, errors.Is(err, ErrCacheMiss))
}

func TestDelete(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, PolicyKey("BLD_000001"), statsPayload{TotalPolicies: 1}, time.Minute))
	require.NoError(t, c.Delete(ctx, PolicyKey("BLD_000001")))

	var out statsPayload
	err := c.Get(ctx, PolicyKey("BLD_000001"), &out)
	assert.True(t, errors.Is(err, ErrCacheMiss))
}
