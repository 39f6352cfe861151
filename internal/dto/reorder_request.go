// File: internal/dto/reorder_request.go
package dto

import "weekly-todo/internal/model"

// ReorderRequest 整批覆寫任務的 day 與 position。
// swagger:model dto.ReorderRequest
type ReorderRequest struct {
	ReorderedTasks []model.TaskPlacement `json:"reorderedTasks" validate:"required"`
}
