// File: internal/handler/admin/settings.go
package admin

import (
	"fmt"
	"net/http"

	"weekly-todo/internal/cache"
	"weekly-todo/internal/database"
	"weekly-todo/internal/dto"
	"weekly-todo/internal/store"

	"github.com/labstack/echo/v4"
)

// GetSettingsHandler 查詢目前設定（管理員限定）
// @Summary     查詢設定
// @Tags        admin
// @Produce     json
// @Success     200 {object} model.Settings
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /admin/settings [get]
func GetSettingsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		settings, err := store.GetSettings(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: err.Error()})
		}
		return c.JSON(http.StatusOK, settings)
	}
}

// UpdateSettingsResponse 設定更新確認。
// swagger:model admin.UpdateSettingsResponse
type UpdateSettingsResponse struct {
	Message      string `json:"message" example:"Settings updated successfully."`
	AllowSignups bool   `json:"allow_signups" example:"false"`
}

// UpdateSettingsHandler 更新註冊開關（管理員限定）
// @Summary     更新設定
// @Description 更新後會使 signup-status 快取失效
// @Tags        admin
// @Accept      json
// @Produce     json
// @Param       body body dto.UpdateSettingsRequest true "設定內容"
// @Success     200 {object} UpdateSettingsResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /admin/settings [put]
func UpdateSettingsHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.UpdateSettingsRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: fmt.Sprintf("invalid request body: %v", err)})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "allow_signups must be a boolean"})
		}

		ctx := c.Request().Context()
		if err := store.UpdateSettings(ctx, db, *req.AllowSignups); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Error updating settings"})
		}

		// 失效快取讓其他實例盡快讀到新值；失敗不影響回應，TTL 會收尾
		rdb.Del(ctx, cache.SignupStatusKey)

		return c.JSON(http.StatusOK, UpdateSettingsResponse{
			Message:      "Settings updated successfully.",
			AllowSignups: *req.AllowSignups,
		})
	}
}
