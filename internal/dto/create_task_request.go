// File: internal/dto/create_task_request.go
package dto

// swagger:model dto.CreateTaskRequest
type CreateTaskRequest struct {
	Text string `json:"text" validate:"required" example:"buy milk"`
	Day  string `json:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday" example:"Monday"`
}
