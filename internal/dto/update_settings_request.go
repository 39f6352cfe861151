// File: internal/dto/update_settings_request.go
package dto

// UpdateSettingsRequest 以指標區分「未給值」與 false。
// swagger:model dto.UpdateSettingsRequest
type UpdateSettingsRequest struct {
	AllowSignups *bool `json:"allow_signups" validate:"required" example:"false"`
}
