package request

// UpdateSettingsRequest upserts store settings as key/value pairs
type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings" binding:"required"`
}
