package service

import (
	"context"
	"testing"
	"time"

	"github.com/liupeizhou/coffee-pos/internal/domain/entity"
	"github.com/liupeizhou/coffee-pos/internal/domain/enum"
	"github.com/liupeizhou/coffee-pos/internal/infrastructure/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearAllData_KeepsStaffCatalogAndSettings(t *testing.T) {
	db := newTestDB(t)
	svc := NewMaintenanceService(repository.NewMaintenanceRepository(db))
	ctx := context.Background()

	staff, shift := seedStaffAndShift(t, db)

	category := &entity.Category{Name: "咖啡", SortOrder: 1}
	require.NoError(t, db.Create(category).Error)
	product := &entity.Product{Name: "美式咖啡", CategoryID: category.ID, Price: 15, IsAvailable: true}
	require.NoError(t, db.Create(product).Error)
	require.NoError(t, db.Create(&entity.Setting{Key: "shop_name", Value: "咖啡店"}).Error)

	order := &entity.Order{
		OrderNumber: "ORD1",
		Subtotal:    15,
		Total:       15,
		Status:      enum.OrderStatusCompleted,
		StaffID:     &staff.ID,
		ShiftID:     &shift.ID,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, db.Create(order).Error)
	require.NoError(t, db.Create(&entity.OrderItem{
		OrderID:     order.ID,
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    1,
		UnitPrice:   15,
	}).Error)
	require.NoError(t, db.Create(&entity.DailySummary{
		SummaryDate:      "2024-05-10",
		TotalRevenue:     15,
		TotalOrders:      1,
		PaymentBreakdown: "[]",
		ProductSales:     "[]",
		HourlyBreakdown:  "[]",
	}).Error)

	require.NoError(t, svc.ClearAllData(ctx))

	counts := map[string]interface{}{
		"orders":      &entity.Order{},
		"order items": &entity.OrderItem{},
		"shifts":      &entity.Shift{},
		"summaries":   &entity.DailySummary{},
	}
	for name, model := range counts {
		var n int64
		require.NoError(t, db.Model(model).Count(&n).Error)
		assert.Zero(t, n, "%s should be wiped", name)
	}

	var staffCount, productCount, settingCount int64
	require.NoError(t, db.Model(&entity.Staff{}).Count(&staffCount).Error)
	require.NoError(t, db.Model(&entity.Product{}).Count(&productCount).Error)
	require.NoError(t, db.Model(&entity.Setting{}).Count(&settingCount).Error)
	assert.EqualValues(t, 1, staffCount)
	assert.EqualValues(t, 1, productCount)
	assert.EqualValues(t, 1, settingCount)
}
