package repository

import (
	"context"

	"github.com/liupeizhou/coffee-pos/internal/domain/entity"
)

// DailySalesRow is one day's aggregate in a sales report
type DailySalesRow struct {
	Date       string  `json:"date"`
	OrderCount int     `json:"order_count"`
	Subtotal   float64 `json:"subtotal"`
	Discount   float64 `json:"discount"`
	Total      float64 `json:"total"`
}

// ProductSalesRow is one product's aggregate over a date range
type ProductSalesRow struct {
	ProductName   string  `json:"product_name"`
	OrderCount    int     `json:"order_count"`
	TotalQuantity int     `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// DayTotals is the single-day headline aggregate
type DayTotals struct {
	OrderCount int     `json:"order_count"`
	Subtotal   float64 `json:"subtotal"`
	Discount   float64 `json:"discount"`
	Total      float64 `json:"total"`
}

// HourlyBucket is the order aggregate for one hour of a day
type HourlyBucket struct {
	Hour       string  `json:"hour"`
	OrderCount int     `json:"order_count"`
	Total      float64 `json:"total"`
}

// PaymentBucket is the order aggregate for one payment method on a day
type PaymentBucket struct {
	PaymentMethod string  `json:"payment_method"`
	OrderCount    int     `json:"order_count"`
	Total         float64 `json:"total"`
}

// ReportRepository defines the read-side aggregation queries over the order
// ledger. All date parameters are inclusive YYYY-MM-DD strings compared
// against the fixed-width prefix of the order creation timestamp.
type ReportRepository interface {
	SalesByDay(ctx context.Context, startDate, endDate string) ([]DailySalesRow, error)
	ProductSales(ctx context.Context, startDate, endDate string) ([]ProductSalesRow, error)
	DayTotals(ctx context.Context, date string) (*DayTotals, error)
	HourlyBreakdown(ctx context.Context, date string) ([]HourlyBucket, error)
	PaymentBreakdown(ctx context.Context, date string) ([]PaymentBucket, error)
}

// DailySummaryRepository persists the materialized daily summary cache
type DailySummaryRepository interface {
	// Replace upserts the summary row for its date.
	Replace(ctx context.Context, summary *entity.DailySummary) error
	GetByDate(ctx context.Context, date string) (*entity.DailySummary, error)
}
