package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"weekly-todo/internal/database"
	"weekly-todo/internal/middleware"
	"weekly-todo/internal/model"
	"weekly-todo/internal/service"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestMeHandler(t *testing.T) {
	// 無 claims
	e := echo.New()
	ctx, rec := newJSONCtx(e, http.MethodGet, "")
	require.NoError(t, MeHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// 使用者已被刪除
	e = echo.New()
	ctx, rec = newJSONCtx(e, http.MethodGet, "")
	ctx.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: 1})
	h := MeHandler(&database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return fakeRow{scanErr: pgx.ErrNoRows}
	}})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)

	// 成功
	e = echo.New()
	ctx, rec = newJSONCtx(e, http.MethodGet, "")
	ctx.Set(middleware.ContextUserKey, &service.CustomClaims{UserID: 1})
	h = MeHandler(&database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return userRow(model.User{ID: 1, Username: "alice", IsAdmin: true, PasswordHash: "h", CreatedAt: time.Now()})
	}})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"username":"alice"`)
	require.NotContains(t, rec.Body.String(), "password")
}
