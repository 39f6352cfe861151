// File: internal/handler/tasks/create.go
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

// CreateTaskHandler 新增任務到指定工作日的尾端
// @Summary     新增任務
// @Description 新任務的 position 為該 (user, day) bucket 目前最大值加一
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Param       body body dto.CreateTaskRequest true "任務內容"
// @Success     201 {object} model.Task
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /tasks [post]
func CreateTaskHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.CurrentClaims(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid or missing token"})
		}

		var req dto.CreateTaskRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: fmt.Sprintf("invalid request body: %v", err)})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		task, err := store.CreateTask(c.Request().Context(), db, claims.UserID, req.Text, req.Day)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "Error creating task"})
		}
		return c.JSON(http.StatusCreated, task)
	}
}
