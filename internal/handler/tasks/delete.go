// File: internal/handler/tasks/delete.go
package tasks

import (
	"errors"
	"net/http"
	"strconv"

	"weekly-todo/internal/database"
	"weekly-todo/internal/dto"
	"weekly-todo/internal/middleware"
	"weekly-todo/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// DeleteTaskHandler 刪除任務
// @Summary     刪除任務
// @Description 查無或非本人任務回 404，重複刪除同樣回 404
// @Tags        tasks
// @Produce     json
// @Param       id path int true "任務 ID"
// @Success     200 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /tasks/{id} [delete]
func DeleteTaskHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.CurrentClaims(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid or missing token"})
		}

		taskID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid task id"})
		}

		if err := store.DeleteTask(c.Request().Context(), db, claims.UserID, taskID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "Task not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Error deleting task"})
		}
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Task deleted successfully"})
	}
}
