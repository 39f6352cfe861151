// File: internal/handler/auth/signup_status.go
package auth

import (
	"errors"
	"net/http"
	"time"

	"weekly-todo/internal/cache"
	"weekly-todo/internal/database"
	"weekly-todo/internal/dto"
	"weekly-todo/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// 快取短暫存活即可，設定更新時另會主動失效。
const signupStatusTTL = 30 * time.Second

// SignupStatusHandler 公開查詢註冊開關
// @Summary     查詢註冊開關
// @Description 不需認證；設定列不存在時視為開放
// @Tags        auth
// @Produce     json
// @Success     200 {object} dto.SignupStatusResponse
// @Failure     500 {object} dto.HTTPError
// @Router      /signup-status [get]
func SignupStatusHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if v, err := rdb.Get(ctx, cache.SignupStatusKey).Result(); err == nil {
			return c.JSON(http.StatusOK, dto.SignupStatusResponse{AllowSignups: v == "1"})
		}

		allow := true
		settings, err := store.GetSettings(ctx, db)
		switch {
		case err == nil:
			allow = settings.AllowSignups
		case errors.Is(err, pgx.ErrNoRows):
			// 設定列不存在時預設開放
		default:
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: err.Error()})
		}

		val := "0"
		if allow {
			val = "1"
		}
		// 快取寫入失敗不影響回應
		rdb.Set(ctx, cache.SignupStatusKey, val, signupStatusTTL)

		return c.JSON(http.StatusOK, dto.SignupStatusResponse{AllowSignups: allow})
	}
}
