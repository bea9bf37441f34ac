package service

import (
	"context"
	"strings"
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

func seedStaffAndShift(t *testing.T, db *gorm.DB) (*entity.Staff, *entity.Shift) {
	t.Helper()

	staff := &entity.Staff{EmployeeID: "001", Name: "管理员", Password: "admin123", Role: enum.StaffRoleAdmin, IsActive: true}
	require.NoError(t, db.Create(staff).Error)

	shift := &entity.Shift{
		ShiftDate:   "2024-05-10",
		ShiftType:   enum.ShiftTypeMidday,
		StaffID:     staff.ID,
		StartTime:   time.Now(),
		OpeningCash: 100,
		Status:      enum.ShiftStatusActive,
	}
	require.NoError(t, db.Create(shift).Error)

	return staff, shift
}

func TestCreateOrder_PersistsOrderAndItems(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(repository.NewOrderRepository(db))
	ctx := context.Background()

	result, err := svc.CreateOrder(ctx, &CreateOrderInput{
		Subtotal:   50,
		Total:      50,
		AmountPaid: 60,
		Change:     10,
		Items: []OrderItemInput{
			{ProductID: 1, ProductName: "美式咖啡", Quantity: 2, UnitPrice: 25},
		},
	})
	require.NoError(t, err)
	require.NotZero(t, result.ID)
	assert.True(t, strings.HasPrefix(result.OrderNumber, "ORD"))

	items, err := svc.GetOrderItems(ctx, result.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "美式咖啡", items[0].ProductName)
	assert.Equal(t, 2, items[0].Quantity)

	orders, err := svc.ListOrders(ctx, 10)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, enum.OrderStatusCompleted, orders[0].Status)
	assert.Equal(t, 10.0, orders[0].Change)
}

func TestCreateOrder_RejectsEmptyAndInvalidItems(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(repository.NewOrderRepository(db))
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, &CreateOrderInput{Total: 10})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	_, err = svc.CreateOrder(ctx, &CreateOrderInput{
		Total: 10,
		Items: []OrderItemInput{{ProductID: 1, ProductName: "拿铁", Quantity: 0, UnitPrice: 10}},
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCreateOrder_RecomputesShiftTotals(t *testing.T) {
	db := newTestDB(t)
	orderRepo := repository.NewOrderRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	svc := NewOrderService(orderRepo)
	ctx := context.Background()

	staff, shift := seedStaffAndShift(t, db)

	for _, total := range []float64{45, 30, 25} {
		_, err := svc.CreateOrder(ctx, &CreateOrderInput{
			Subtotal:   total,
			Total:      total,
			AmountPaid: total,
			StaffID:    &staff.ID,
			ShiftID:    &shift.ID,
			Items: []OrderItemInput{
				{ProductID: 1, ProductName: "拿铁", Quantity: 1, UnitPrice: total},
			},
		})
		require.NoError(t, err)
	}

	got, err := shiftRepo.GetByID(ctx, shift.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalOrders)
	assert.Equal(t, 100.0, got.TotalSales)

	// Recompute is idempotent.
	require.NoError(t, shiftRepo.RecomputeTotals(ctx, shift.ID))
	got, err = shiftRepo.GetByID(ctx, shift.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalOrders)
	assert.Equal(t, 100.0, got.TotalSales)
}

func TestGetOrderItems_UnknownOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewOrderService(repository.NewOrderRepository(db))

	_, err := svc.GetOrderItems(context.Background(), 999)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
