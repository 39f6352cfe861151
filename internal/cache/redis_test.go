package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient(t *testing.T) {
	t.Cleanup(func() {
		redisNewClient = func(opt *redis.Options) Cache { return redis.NewClient(opt) }
	})

	// ping 失敗
	redisNewClient = func(opt *redis.Options) Cache {
		return &FakeCache{
			PingFn: func(context.Context) *redis.StatusCmd {
				return redis.NewStatusResult("", errors.New("down"))
			},
		}
	}
	_, err := NewRedisClient("addr", "pw", 0)
	require.Error(t, err)

	// 成功
	var gotOpt *redis.Options
	redisNewClient = func(opt *redis.Options) Cache {
		gotOpt = opt
		return &FakeCache{
			PingFn: func(context.Context) *redis.StatusCmd {
				return redis.NewStatusResult("PONG", nil)
			},
		}
	}
	c, err := NewRedisClient("addr", "pw", 2)
	require.NoError(t, err)
	require.NotNil(t, c)
	require.Equal(t, "addr", gotOpt.Addr)
	require.Equal(t, "pw", gotOpt.Password)
	require.Equal(t, 2, gotOpt.DB)
}
