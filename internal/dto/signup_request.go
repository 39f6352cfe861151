// File: internal/dto/signup_request.go
package dto

// SignupRequest 註冊請求；username 僅允許英數與底線，另由 handler 檢查字元集。
// swagger:model dto.SignupRequest
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=20" example:"alice"`
	Password string `json:"password" validate:"required,min=6" example:"Secret123!"`
}
