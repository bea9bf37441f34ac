package repository

import (
	"context"
	"errors"

	"github.com/liupeizhou/coffee-pos/internal/domain/entity"
	domainRepo "github.com/liupeizhou/coffee-pos/internal/domain/repository"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

// Date filtering compares the YYYY-MM-DD prefix of the stored timestamp.
// The comparison is lexicographic and only correct because the driver writes
// timestamps as fixed-width zero-padded text.

func (r *reportRepository) SalesByDay(ctx context.Context, startDate, endDate string) ([]domainRepo.DailySalesRow, error) {
	var rows []domainRepo.DailySalesRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			substr(created_at, 1, 10) as date,
			COUNT(*) as order_count,
			COALESCE(SUM(subtotal), 0) as subtotal,
			COALESCE(SUM(discount), 0) as discount,
			COALESCE(SUM(total), 0) as total
		FROM orders
		WHERE substr(created_at, 1, 10) >= ? AND substr(created_at, 1, 10) <= ?
		GROUP BY substr(created_at, 1, 10)
		ORDER BY date DESC
	`, startDate, endDate).Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) ProductSales(ctx context.Context, startDate, endDate string) ([]domainRepo.ProductSalesRow, error) {
	var rows []domainRepo.ProductSalesRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			oi.product_name,
			COUNT(*) as order_count,
			SUM(oi.quantity) as total_quantity,
			SUM(oi.quantity * oi.unit_price) as total_revenue
		FROM order_items oi
		JOIN orders o ON oi.order_id = o.id
		WHERE substr(o.created_at, 1, 10) >= ? AND substr(o.created_at, 1, 10) <= ?
		GROUP BY oi.product_name
		ORDER BY total_quantity DESC
	`, startDate, endDate).Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) DayTotals(ctx context.Context, date string) (*domainRepo.DayTotals, error) {
	var totals domainRepo.DayTotals
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) as order_count,
			COALESCE(SUM(subtotal), 0) as subtotal,
			COALESCE(SUM(discount), 0) as discount,
			COALESCE(SUM(total), 0) as total
		FROM orders
		WHERE substr(created_at, 1, 10) = ?
	`, date).Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

func (r *reportRepository) HourlyBreakdown(ctx context.Context, date string) ([]domainRepo.HourlyBucket, error) {
	var buckets []domainRepo.HourlyBucket
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			substr(created_at, 12, 2) as hour,
			COUNT(*) as order_count,
			COALESCE(SUM(total), 0) as total
		FROM orders
		WHERE substr(created_at, 1, 10) = ?
		GROUP BY hour
		ORDER BY hour
	`, date).Scan(&buckets).Error
	return buckets, err
}

func (r *reportRepository) PaymentBreakdown(ctx context.Context, date string) ([]domainRepo.PaymentBucket, error) {
	var buckets []domainRepo.PaymentBucket
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			payment_method,
			COUNT(*) as order_count,
			COALESCE(SUM(total), 0) as total
		FROM orders
		WHERE substr(created_at, 1, 10) = ? AND payment_method IS NOT NULL
		GROUP BY payment_method
	`, date).Scan(&buckets).Error
	return buckets, err
}

type dailySummaryRepository struct {
	db *gorm.DB
}

// NewDailySummaryRepository creates a new daily summary repository
func NewDailySummaryRepository(db *gorm.DB) domainRepo.DailySummaryRepository {
	return &dailySummaryRepository{db: db}
}

func (r *dailySummaryRepository) Replace(ctx context.Context, summary *entity.DailySummary) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.DailySummary{}, "summary_date = ?", summary.SummaryDate).Error; err != nil {
			return err
		}
		return tx.Create(summary).Error
	})
}

func (r *dailySummaryRepository) GetByDate(ctx context.Context, date string) (*entity.DailySummary, error) {
	var summary entity.DailySummary
	err := r.db.WithContext(ctx).First(&summary, "summary_date = ?", date).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &summary, err
}
