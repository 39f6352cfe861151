// File: internal/handler/tasks/list.go
package tasks

import (
	"net/http"

	"weekly-todo/internal/database"
	"weekly-todo/internal/dto"
	"weekly-todo/internal/middleware"
	"weekly-todo/internal/model"
	"weekly-todo/internal/store"

	"github.com/labstack/echo/v4"
)

// ListTasksHandler 取得當前使用者的全部任務
// @Summary     列出任務
// @Description 回傳當前使用者所有任務，依 day 再依 position 排序
// @Tags        tasks
// @Produce     json
// @Success     200 {array} model.Task
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /tasks [get]
func ListTasksHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.CurrentClaims(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid or missing token"})
		}

		tasks, err := store.ListTasksByUser(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: err.Error()})
		}
		if tasks == nil {
			tasks = []model.Task{}
		}
		return c.JSON(http.StatusOK, tasks)
	}
}
