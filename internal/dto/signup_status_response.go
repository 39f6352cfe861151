// File: internal/dto/signup_status_response.go
package dto

// swagger:model dto.SignupStatusResponse
type SignupStatusResponse struct {
	AllowSignups bool `json:"allowSignups" example:"true"`
}
