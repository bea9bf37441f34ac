package service

import (
	"context"
	"testing"
	"time"

	"github.com/liupeizhou/coffee-pos/internal/domain/entity"
	"github.com/liupeizhou/coffee-pos/internal/domain/enum"
	"github.com/liupeizhou/coffee-pos/internal/infrastructure/repository"
	"github.com/liupeizhou/coffee-pos/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedOrder(t *testing.T, db *gorm.DB, number string, total float64, method string, createdAt time.Time) *entity.Order {
	t.Helper()

	order := &entity.Order{
		OrderNumber:   number,
		Subtotal:      total,
		Total:         total,
		PaymentMethod: &method,
		AmountPaid:    total,
		Status:        enum.OrderStatusCompleted,
		CreatedAt:     createdAt,
	}
	require.NoError(t, db.Create(order).Error)

	item := &entity.OrderItem{
		OrderID:     order.ID,
		ProductID:   1,
		ProductName: "美式咖啡",
		Quantity:    2,
		UnitPrice:   total / 2,
		CreatedAt:   createdAt,
	}
	require.NoError(t, db.Create(item).Error)

	return order
}

func newReportService(t *testing.T) (*ReportService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewReportService(repository.NewReportRepository(db), repository.NewDailySummaryRepository(db))
	return svc, db
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		current  float64
		baseline float64
		want     float64
	}{
		{150, 100, 50},
		{100, 150, -33.3},
		{100, 0, 0},
		{0, 0, 0},
		{0, 80, -100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, percentChange(tt.current, tt.baseline), "%v vs %v", tt.current, tt.baseline)
	}
}

func TestDailyStats(t *testing.T) {
	svc, db := newReportService(t)
	ctx := context.Background()

	day := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	seedOrder(t, db, "ORD1", 50, "现金", day)
	seedOrder(t, db, "ORD2", 30, "支付宝", day.Add(2*time.Hour))
	seedOrder(t, db, "ORD3", 20, "现金", day.AddDate(0, 0, -1))

	stats, err := svc.DailyStats(ctx, "2024-05-10")
	require.NoError(t, err)

	assert.Equal(t, 2, stats.OrderCount)
	assert.Equal(t, 80.0, stats.Total)
	assert.Len(t, stats.HourlyBreakdown, 2)
	assert.Len(t, stats.PaymentBreakdown, 2)
}

func TestDailyStats_EmptyDay(t *testing.T) {
	svc, _ := newReportService(t)

	stats, err := svc.DailyStats(context.Background(), "2024-05-10")
	require.NoError(t, err)

	assert.Zero(t, stats.OrderCount)
	assert.Zero(t, stats.Total)
	assert.Empty(t, stats.HourlyBreakdown)
	assert.Empty(t, stats.PaymentBreakdown)
}

func TestDailyStats_RejectsBadDate(t *testing.T) {
	svc, _ := newReportService(t)

	_, err := svc.DailyStats(context.Background(), "10/05/2024")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestComparison(t *testing.T) {
	svc, db := newReportService(t)
	ctx := context.Background()

	day := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	seedOrder(t, db, "ORD1", 150, "现金", day)
	seedOrder(t, db, "ORD2", 100, "现金", day.AddDate(0, 0, -1))

	data, err := svc.Comparison(ctx, "2024-05-10")
	require.NoError(t, err)

	assert.Equal(t, 150.0, data.Today.Total)
	assert.Equal(t, 100.0, data.Yesterday.Total)
	assert.Equal(t, 50.0, data.Changes.DayOverDay)
	// No orders a month earlier: the baseline is zero, so the change is 0.
	assert.Equal(t, 0.0, data.Changes.MonthOverMonth)
}

func TestSalesReport_OrdersByDayDescending(t *testing.T) {
	svc, db := newReportService(t)
	ctx := context.Background()

	day := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	seedOrder(t, db, "ORD1", 50, "现金", day)
	seedOrder(t, db, "ORD2", 30, "现金", day.AddDate(0, 0, -1))

	rows, err := svc.SalesReport(ctx, "2024-05-01", "2024-05-31")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-05-10", rows[0].Date)
	assert.Equal(t, "2024-05-09", rows[1].Date)
}

func TestUpdateDailySummary_Replaces(t *testing.T) {
	svc, db := newReportService(t)
	ctx := context.Background()

	day := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	seedOrder(t, db, "ORD1", 50, "现金", day)

	summary, err := svc.UpdateDailySummary(ctx, "2024-05-10")
	require.NoError(t, err)
	assert.Equal(t, 50.0, summary.TotalRevenue)
	assert.Equal(t, 1, summary.TotalOrders)

	seedOrder(t, db, "ORD2", 30, "支付宝", day.Add(time.Hour))

	summary, err = svc.UpdateDailySummary(ctx, "2024-05-10")
	require.NoError(t, err)
	assert.Equal(t, 80.0, summary.TotalRevenue)
	assert.Equal(t, 2, summary.TotalOrders)

	// Only one cached row per date.
	var count int64
	require.NoError(t, db.Model(&entity.DailySummary{}).Where("summary_date = ?", "2024-05-10").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
