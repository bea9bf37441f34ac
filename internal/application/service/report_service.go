package service

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/liupeizhou/coffee-pos/internal/domain/entity"
	"github.com/liupeizhou/coffee-pos/internal/domain/repository"
	"github.com/liupeizhou/coffee-pos/pkg/apperror"
)

// ReportService computes sales aggregates over the order ledger and
// maintains the materialized daily summary cache
type ReportService struct {
	reportRepo  repository.ReportRepository
	summaryRepo repository.DailySummaryRepository
}

// NewReportService creates a new report service
func NewReportService(reportRepo repository.ReportRepository, summaryRepo repository.DailySummaryRepository) *ReportService {
	return &ReportService{
		reportRepo:  reportRepo,
		summaryRepo: summaryRepo,
	}
}

// SalesReport returns per-day aggregates for the inclusive date range,
// newest day first
func (s *ReportService) SalesReport(ctx context.Context, startDate, endDate string) ([]repository.DailySalesRow, error) {
	if err := validateDate(startDate); err != nil {
		return nil, err
	}
	if err := validateDate(endDate); err != nil {
		return nil, err
	}
	return s.reportRepo.SalesByDay(ctx, startDate, endDate)
}

// ProductSales returns per-product aggregates for the inclusive date range,
// best sellers first
func (s *ReportService) ProductSales(ctx context.Context, startDate, endDate string) ([]repository.ProductSalesRow, error) {
	if err := validateDate(startDate); err != nil {
		return nil, err
	}
	if err := validateDate(endDate); err != nil {
		return nil, err
	}
	return s.reportRepo.ProductSales(ctx, startDate, endDate)
}

// DailyStats is the full dashboard snapshot for one day
type DailyStats struct {
	Date             string                     `json:"date"`
	OrderCount       int                        `json:"order_count"`
	Subtotal         float64                    `json:"subtotal"`
	Discount         float64                    `json:"discount"`
	Total            float64                    `json:"total"`
	HourlyBreakdown  []repository.HourlyBucket  `json:"hourly_breakdown"`
	PaymentBreakdown []repository.PaymentBucket `json:"payment_breakdown"`
}

// DailyStats aggregates one day of the ledger: headline totals plus the
// hourly and payment-method breakdowns. A day with no orders yields zeros
// and empty breakdowns, not an error.
func (s *ReportService) DailyStats(ctx context.Context, date string) (*DailyStats, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	totals, err := s.reportRepo.DayTotals(ctx, date)
	if err != nil {
		return nil, err
	}

	hourly, err := s.reportRepo.HourlyBreakdown(ctx, date)
	if err != nil {
		return nil, err
	}

	payments, err := s.reportRepo.PaymentBreakdown(ctx, date)
	if err != nil {
		return nil, err
	}

	return &DailyStats{
		Date:             date,
		OrderCount:       totals.OrderCount,
		Subtotal:         totals.Subtotal,
		Discount:         totals.Discount,
		Total:            totals.Total,
		HourlyBreakdown:  hourly,
		PaymentBreakdown: payments,
	}, nil
}

// ComparisonData compares a day against the same calendar day one day and
// one month earlier
type ComparisonData struct {
	Today     repository.DayTotals `json:"today"`
	Yesterday repository.DayTotals `json:"yesterday"`
	LastMonth repository.DayTotals `json:"last_month"`
	Changes   ComparisonChanges    `json:"changes"`
}

// ComparisonChanges holds percentage changes rounded to one decimal
type ComparisonChanges struct {
	DayOverDay     float64 `json:"day_over_day"`
	MonthOverMonth float64 `json:"month_over_month"`
}

// Comparison computes revenue deltas against the previous day and the same
// day of the previous month. A zero baseline yields a 0% change rather than
// a division error.
func (s *ReportService) Comparison(ctx context.Context, date string) (*ComparisonData, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, apperror.NewBadRequestError("Date must be in YYYY-MM-DD format")
	}

	yesterday := day.AddDate(0, 0, -1).Format("2006-01-02")
	lastMonth := day.AddDate(0, -1, 0).Format("2006-01-02")

	today, err := s.reportRepo.DayTotals(ctx, date)
	if err != nil {
		return nil, err
	}
	prevDay, err := s.reportRepo.DayTotals(ctx, yesterday)
	if err != nil {
		return nil, err
	}
	prevMonth, err := s.reportRepo.DayTotals(ctx, lastMonth)
	if err != nil {
		return nil, err
	}

	return &ComparisonData{
		Today:     *today,
		Yesterday: *prevDay,
		LastMonth: *prevMonth,
		Changes: ComparisonChanges{
			DayOverDay:     percentChange(today.Total, prevDay.Total),
			MonthOverMonth: percentChange(today.Total, prevMonth.Total),
		},
	}, nil
}

// UpdateDailySummary recomputes the materialized summary row for the date
// from the live ledger and replaces any cached row
func (s *ReportService) UpdateDailySummary(ctx context.Context, date string) (*entity.DailySummary, error) {
	stats, err := s.DailyStats(ctx, date)
	if err != nil {
		return nil, err
	}

	payments, err := json.Marshal(stats.PaymentBreakdown)
	if err != nil {
		return nil, err
	}
	hourly, err := json.Marshal(stats.HourlyBreakdown)
	if err != nil {
		return nil, err
	}
	products, err := s.reportRepo.ProductSales(ctx, date, date)
	if err != nil {
		return nil, err
	}
	productSales, err := json.Marshal(products)
	if err != nil {
		return nil, err
	}

	summary := &entity.DailySummary{
		SummaryDate:      date,
		TotalRevenue:     stats.Total,
		TotalOrders:      stats.OrderCount,
		TotalDiscount:    stats.Discount,
		PaymentBreakdown: string(payments),
		ProductSales:     string(productSales),
		HourlyBreakdown:  string(hourly),
	}

	if err := s.summaryRepo.Replace(ctx, summary); err != nil {
		return nil, err
	}

	return s.summaryRepo.GetByDate(ctx, date)
}

// GetDailySummary returns the cached summary row for the date, nil when the
// day has never been summarized
func (s *ReportService) GetDailySummary(ctx context.Context, date string) (*entity.DailySummary, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	return s.summaryRepo.GetByDate(ctx, date)
}

// percentChange returns (current-baseline)/baseline as a percentage rounded
// to one decimal, 0 when the baseline is zero
func percentChange(current, baseline float64) float64 {
	if baseline == 0 {
		return 0
	}
	return math.Round((current-baseline)/baseline*1000) / 10
}

func validateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return apperror.NewBadRequestError("Date must be in YYYY-MM-DD format")
	}
	return nil
}
