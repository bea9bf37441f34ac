package request

// StartShiftRequest represents a start shift request
type StartShiftRequest struct {
	OpeningCash float64 `json:"opening_cash" binding:"gte=0"`
}

// EndShiftRequest represents an end shift request
type EndShiftRequest struct {
	ClosingCash float64 `json:"closing_cash" binding:"gte=0"`
	Notes       *string `json:"notes"`
}
