// File: internal/dto/update_task_request.go
package dto

// UpdateTaskRequest 部分更新；兩個欄位皆未給時 handler 回 400。
// swagger:model dto.UpdateTaskRequest
type UpdateTaskRequest struct {
	Text      *string `json:"text,omitempty" validate:"omitempty,min=1" example:"buy milk"`
	Completed *bool   `json:"completed,omitempty" example:"true"`
}
