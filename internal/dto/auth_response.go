// File: internal/dto/auth_response.go
package dto

// AuthUser 是 token 對應的使用者摘要。
// swagger:model dto.AuthUser
type AuthUser struct {
	ID       int    `json:"id" example:"1"`
	Username string `json:"username" example:"alice"`
	IsAdmin  bool   `json:"is_admin" example:"false"`
}

// AuthResponse 為登入與註冊共用的回應格式。
// swagger:model dto.AuthResponse
type AuthResponse struct {
	Token string   `json:"token" example:"eyJhbGciOi..."`
	User  AuthUser `json:"user"`
}
