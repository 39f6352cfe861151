package auth

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"weekly-todo/internal/database"
	"weekly-todo/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// signupDB 依 SQL 內容分派 QueryRow：settings、查使用者、建使用者。
func signupDB(t *testing.T, settingsRow, userRow, insertRow fakeRow) *database.FakeDB {
	return &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
			switch {
			case strings.Contains(sql, "FROM settings"):
				return settingsRow
			case strings.Contains(sql, "INSERT INTO users"):
				return insertRow
			case strings.Contains(sql, "FROM users"):
				return userRow
			default:
				t.Fatalf("unexpected query: %s", sql)
				return nil
			}
		},
	}
}

func TestSignupHandler(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	body := `{"username":"alice_1","password":"secret1"}`

	// bind error
	e := echo.New()
	e.Binder = errBinder{}
	ctx, rec := newJSONCtx(e, http.MethodPost, "")
	require.NoError(t, SignupHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// validate error
	e = echo.New()
	e.Validator = errValidator{}
	ctx, rec = newJSONCtx(e, http.MethodPost, body)
	require.NoError(t, SignupHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// 非法字元
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newJSONCtx(e, http.MethodPost, `{"username":"bad name!","password":"secret1"}`)
	require.NoError(t, SignupHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// 註冊關閉
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newJSONCtx(e, http.MethodPost, body)
	db := signupDB(t, fakeRow{vals: []any{false}}, fakeRow{}, fakeRow{})
	require.NoError(t, SignupHandler(db)(ctx))
	require.Equal(t, http.StatusForbidden, rec.Code)

	// 設定列不存在視同關閉
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newJSONCtx(e, http.MethodPost, body)
	db = signupDB(t, fakeRow{scanErr: pgx.ErrNoRows}, fakeRow{}, fakeRow{})
	require.NoError(t, SignupHandler(db)(ctx))
	require.Equal(t, http.StatusForbidden, rec.Code)

	// 帳號已存在
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newJSONCtx(e, http.MethodPost, body)
	db = signupDB(t,
		fakeRow{vals: []any{true}},
		userRow(model.User{ID: 2, Username: "alice_1", PasswordHash: "h", CreatedAt: time.Now()}),
		fakeRow{})
	require.NoError(t, SignupHandler(db)(ctx))
	require.Equal(t, http.StatusConflict, rec.Code)

	// 成功
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newJSONCtx(e, http.MethodPost, body)
	db = signupDB(t,
		fakeRow{vals: []any{true}},
		fakeRow{scanErr: pgx.ErrNoRows},
		fakeRow{vals: []any{5, time.Now()}})
	require.NoError(t, SignupHandler(db)(ctx))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), "token")
	require.Contains(t, rec.Body.String(), `"id":5`)
	require.Contains(t, rec.Body.String(), `"is_admin":false`)
}
