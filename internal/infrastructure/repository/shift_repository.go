package repository

import (
	"context"
	"errors"

	"github.com/liupeizhou/coffee-pos/internal/domain/entity"
	"github.com/liupeizhou/coffee-pos/internal/domain/enum"
	domainRepo "github.com/liupeizhou/coffee-pos/internal/domain/repository"
	"gorm.io/gorm"
)

type shiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) domainRepo.ShiftRepository {
	return &shiftRepository{db: db}
}

func (r *shiftRepository) Create(ctx context.Context, shift *entity.Shift) error {
	return r.db.WithContext(ctx).Create(shift).Error
}

func (r *shiftRepository) GetByID(ctx context.Context, id uint) (*entity.Shift, error) {
	var shift entity.Shift
	err := r.db.WithContext(ctx).Preload("Staff").First(&shift, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &shift, err
}

func (r *shiftRepository) List(ctx context.Context, limit int) ([]entity.Shift, error) {
	var shifts []entity.Shift
	err := r.db.WithContext(ctx).
		Preload("Staff").
		Order("created_at DESC").
		Limit(limit).
		Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepository) GetActiveForStaff(ctx context.Context, staffID uint) (*entity.Shift, error) {
	var shift entity.Shift
	err := r.db.WithContext(ctx).
		Preload("Staff").
		Where("staff_id = ? AND status = ?", staffID, enum.ShiftStatusActive).
		Order("start_time DESC").
		First(&shift).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &shift, err
}

func (r *shiftRepository) GetActive(ctx context.Context) (*entity.Shift, error) {
	var shift entity.Shift
	err := r.db.WithContext(ctx).
		Preload("Staff").
		Where("status = ?", enum.ShiftStatusActive).
		Order("start_time DESC").
		First(&shift).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &shift, err
}

func (r *shiftRepository) Update(ctx context.Context, shift *entity.Shift) error {
	return r.db.WithContext(ctx).Save(shift).Error
}

func (r *shiftRepository) RecomputeTotals(ctx context.Context, shiftID uint) error {
	return recomputeShiftTotals(r.db.WithContext(ctx), shiftID)
}

// recomputeShiftTotals overwrites the cached totals of a shift from the
// orders attached to it. Shared with the order repository so order creation
// can refresh the cache inside its own transaction.
func recomputeShiftTotals(tx *gorm.DB, shiftID uint) error {
	var agg struct {
		OrderCount int
		TotalSales float64
	}
	err := tx.Raw(`
		SELECT COUNT(*) as order_count, COALESCE(SUM(total), 0) as total_sales
		FROM orders
		WHERE shift_id = ?
	`, shiftID).Scan(&agg).Error
	if err != nil {
		return err
	}

	return tx.Model(&entity.Shift{}).
		Where("id = ?", shiftID).
		Updates(map[string]interface{}{
			"total_orders": agg.OrderCount,
			"total_sales":  agg.TotalSales,
		}).Error
}
