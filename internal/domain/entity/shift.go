package entity

import (
	"time"

	"github.com/liupeizhou/coffee-pos/internal/domain/enum"
)

// Shift is one work period for a staff member. TotalSales and TotalOrders
// are a cache over the orders attached to the shift; RecomputeTotals on the
// shift repository is the only writer allowed to touch them.
type Shift struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	ShiftDate   string           `gorm:"size:10;not null" json:"shift_date"`
	ShiftType   enum.ShiftType   `gorm:"size:50;not null" json:"shift_type"`
	StaffID     uint             `gorm:"not null;index" json:"staff_id"`
	StartTime   time.Time        `gorm:"not null" json:"start_time"`
	EndTime     *time.Time       `json:"end_time,omitempty"`
	OpeningCash float64          `gorm:"default:0" json:"opening_cash"`
	ClosingCash *float64         `json:"closing_cash,omitempty"`
	TotalSales  float64          `gorm:"default:0" json:"total_sales"`
	TotalOrders int              `gorm:"default:0" json:"total_orders"`
	Status      enum.ShiftStatus `gorm:"size:50;default:'active'" json:"status"`
	Notes       *string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`

	Staff *Staff `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
}

// TableName returns the table name for the Shift model
func (Shift) TableName() string {
	return "shifts"
}
