// File: internal/dto/message_response.go
package dto

// MessageResponse 操作成功的確認訊息。
// swagger:model dto.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"Task deleted successfully"`
}
