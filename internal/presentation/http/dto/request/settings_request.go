package request

// UpdateSettingsRequest represents a bulk settings update. Keys are setting
// names; string values are stored as-is and everything else as JSON.
type UpdateSettingsRequest map[string]any

// ExportMonthlyRequest represents a monthly export request
type ExportMonthlyRequest struct {
	Year  int `json:"year" binding:"required"`
	Month int `json:"month" binding:"required,min=1,max=12"`
}
