package admin

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"weekly-todo/internal/cache"
	"weekly-todo/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestGetSettingsHandler(t *testing.T) {
	// 查詢失敗
	e := echo.New()
	ctx, rec := newJSONCtx(e, http.MethodGet, "")
	db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return fakeRow{scanErr: errors.New("db")}
	}}
	require.NoError(t, GetSettingsHandler(db)(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// 成功
	e = echo.New()
	ctx, rec = newJSONCtx(e, http.MethodGet, "")
	db = &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return fakeRow{vals: []any{true}}
	}}
	require.NoError(t, GetSettingsHandler(db)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"allow_signups":true`)
}

func TestUpdateSettingsHandler(t *testing.T) {
	body := `{"allow_signups":false}`

	// bind error
	e := echo.New()
	ctx, rec := newJSONCtx(e, http.MethodPut, "{bad")
	require.NoError(t, UpdateSettingsHandler(&database.FakeDB{}, &cache.FakeCache{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// validate error（未給 allow_signups）
	e = echo.New()
	e.Validator = errValidator{}
	ctx, rec = newJSONCtx(e, http.MethodPut, `{}`)
	require.NoError(t, UpdateSettingsHandler(&database.FakeDB{}, &cache.FakeCache{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "allow_signups must be a boolean")

	// 儲存層錯誤
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newJSONCtx(e, http.MethodPut, body)
	db := &database.FakeDB{ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.CommandTag{}, errors.New("db")
	}}
	require.NoError(t, UpdateSettingsHandler(db, &cache.FakeCache{})(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// 成功並失效快取
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newJSONCtx(e, http.MethodPut, body)
	db = &database.FakeDB{ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
		require.Equal(t, []any{false}, args)
		return pgconn.NewCommandTag("UPDATE 1"), nil
	}}
	delCalled := false
	rdb := &cache.FakeCache{DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
		delCalled = true
		require.Equal(t, []string{cache.SignupStatusKey}, keys)
		return redis.NewIntResult(1, nil)
	}}
	require.NoError(t, UpdateSettingsHandler(db, rdb)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Settings updated successfully.")
	require.Contains(t, rec.Body.String(), `"allow_signups":false`)
	require.True(t, delCalled)
}
