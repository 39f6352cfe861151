// File: internal/handler/admin/users.go
package admin

import (
	"net/http"

	"weekly-todo/internal/database"
	"weekly-todo/internal/dto"
	"weekly-todo/internal/store"

	"github.com/labstack/echo/v4"
)

// ListUsersHandler 列出所有使用者（管理員限定）
// @Summary     列出使用者
// @Description 回傳所有註冊使用者，依建立時間新到舊排序
// @Tags        admin
// @Produce     json
// @Success     200 {array} dto.UserResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /admin/users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := store.ListUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: err.Error()})
		}

		resp := make([]dto.UserResponse, 0, len(users))
		for i := range users {
			resp = append(resp, dto.NewUserResponse(&users[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}
