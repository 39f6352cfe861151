// File: internal/handler/tasks/reorder.go
package tasks

import (
	"fmt"
	"net/http"

	"weekly-todo/internal/database"
	"weekly-todo/internal/dto"
	"weekly-todo/internal/middleware"
	"weekly-todo/internal/store"

	"github.com/labstack/echo/v4"
)

// ReorderTasksHandler 整批覆寫任務的 day 與 position
// @Summary     重排任務
// @Description 單一交易內套用所有項目；不屬於當前使用者的項目不命中任何列，整批其餘照常生效
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Param       body body dto.ReorderRequest true "重排清單"
// @Success     200 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /tasks/reorder [post]
func ReorderTasksHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.CurrentClaims(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid or missing token"})
		}

		var req dto.ReorderRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: fmt.Sprintf("invalid request body: %v", err)})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		if err := store.ReorderTasks(c.Request().Context(), db, claims.UserID, req.ReorderedTasks); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Failed to reorder tasks."})
		}
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Tasks reordered successfully."})
	}
}
