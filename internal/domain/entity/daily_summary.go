package entity

import "time"

// DailySummary is a materialized snapshot of one day's reporting figures.
// It is written on demand and is not kept in sync with new orders; the
// reporting queries against the order ledger remain the source of truth.
type DailySummary struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	SummaryDate      string    `gorm:"size:10;not null;unique" json:"summary_date"`
	TotalRevenue     float64   `gorm:"default:0" json:"total_revenue"`
	TotalOrders      int       `gorm:"default:0" json:"total_orders"`
	TotalDiscount    float64   `gorm:"default:0" json:"total_discount"`
	PaymentBreakdown string    `gorm:"type:text" json:"payment_breakdown"`
	ProductSales     string    `gorm:"type:text" json:"product_sales"`
	HourlyBreakdown  string    `gorm:"type:text" json:"hourly_breakdown"`
	CreatedAt        time.Time `json:"created_at"`
}

// TableName returns the table name for the DailySummary model
func (DailySummary) TableName() string {
	return "daily_summary"
}
