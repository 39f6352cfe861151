package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestFakeCache(t *testing.T) {
	ctx := context.Background()

	f := &FakeCache{
		GetFn: func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult("v", nil)
		},
		SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("OK", nil)
		},
		SetNXFn: func(context.Context, string, any, time.Duration) *redis.BoolCmd {
			return redis.NewBoolResult(true, nil)
		},
		DelFn: func(context.Context, ...string) *redis.IntCmd {
			return redis.NewIntResult(1, nil)
		},
		PingFn: func(context.Context) *redis.StatusCmd {
			return redis.NewStatusResult("PONG", nil)
		},
	}

	v, err := f.Get(ctx, "k").Result()
	require.NoError(t, err)
	require.Equal(t, "v", v)
	require.NoError(t, f.Set(ctx, "k", "v", 0).Err())
	ok, err := f.SetNX(ctx, "k", "v", time.Minute).Result()
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, f.Del(ctx, "k").Err())
	require.NoError(t, f.Ping(ctx).Err())
	require.NoError(t, f.Close())
}

func TestFakeCachePanicsWhenUnset(t *testing.T) {
	f := &FakeCache{}
	require.Panics(t, func() { f.Get(context.Background(), "k") })
	require.Panics(t, func() { f.Set(context.Background(), "k", "v", 0) })
	require.Panics(t, func() { f.SetNX(context.Background(), "k", "v", 0) })
	require.Panics(t, func() { f.Del(context.Background(), "k") })
	require.Panics(t, func() { f.Ping(context.Background()) })
}

func TestFakeCacheCloseDefault(t *testing.T) {
	require.NoError(t, (&FakeCache{}).Close())
}
