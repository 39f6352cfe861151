package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"weekly-todo/internal/cache"
	"weekly-todo/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestPingHandler(t *testing.T) {
	newCtx := func(e *echo.Echo) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		return e.NewContext(req, rec), rec
	}

	// 資料庫不健康
	e := echo.New()
	ctx, rec := newCtx(e)
	db := &database.FakeDB{PingFn: func(context.Context) error { return errors.New("db") }}
	require.NoError(t, PingHandler(db, &cache.FakeCache{})(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "database unhealthy")

	// 快取不健康
	e = echo.New()
	ctx, rec = newCtx(e)
	db = &database.FakeDB{PingFn: func(context.Context) error { return nil }}
	rdb := &cache.FakeCache{PingFn: func(context.Context) *redis.StatusCmd {
		return redis.NewStatusResult("", errors.New("cache"))
	}}
	require.NoError(t, PingHandler(db, rdb)(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "cache unhealthy")

	// 正常
	e = echo.New()
	ctx, rec = newCtx(e)
	rdb = &cache.FakeCache{PingFn: func(context.Context) *redis.StatusCmd {
		return redis.NewStatusResult("PONG", nil)
	}}
	require.NoError(t, PingHandler(db, rdb)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "pong")
}
