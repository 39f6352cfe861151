// File: internal/handler/tasks/update.go
package tasks

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"weekly-todo/internal/database"
	"weekly-todo/internal/dto"
	"weekly-todo/internal/middleware"
	"weekly-todo/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// UpdateTaskHandler 部分更新任務的 text 或 completed
// @Summary     更新任務
// @Description 僅異動有給值的欄位；兩者皆未給回 400。查無或非本人任務一律回 404
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Param       id   path int                   true "任務 ID"
// @Param       body body dto.UpdateTaskRequest true "更新欄位"
// @Success     200 {object} model.Task
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /tasks/{id} [put]
func UpdateTaskHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.CurrentClaims(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid or missing token"})
		}

		taskID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid task id"})
		}

		var req dto.UpdateTaskRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: fmt.Sprintf("invalid request body: %v", err)})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}
		if req.Text == nil && req.Completed == nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "No update fields provided"})
		}

		task, err := store.UpdateTask(c.Request().Context(), db, claims.UserID, taskID, req.Text, req.Completed)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, dto.HTTPError{Message: "Task not found"})
			}
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Error updating task"})
		}
		return c.JSON(http.StatusOK, task)
	}
}
