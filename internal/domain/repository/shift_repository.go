package repository

import (
	"context"

	"github.com/liupeizhou/coffee-pos/internal/domain/entity"
)

// ShiftRepository defines shift persistence operations
type ShiftRepository interface {
	Create(ctx context.Context, shift *entity.Shift) error
	GetByID(ctx context.Context, id uint) (*entity.Shift, error)
	// List returns the most recent shifts with staff preloaded, newest first.
	List(ctx context.Context, limit int) ([]entity.Shift, error)
	// GetActiveForStaff returns the staff member's active shift, nil if none.
	GetActiveForStaff(ctx context.Context, staffID uint) (*entity.Shift, error)
	// GetActive returns the most recently started active shift of any staff.
	GetActive(ctx context.Context) (*entity.Shift, error)
	Update(ctx context.Context, shift *entity.Shift) error
	// RecomputeTotals overwrites the shift's cached total_orders/total_sales
	// from the orders attached to it. Idempotent.
	RecomputeTotals(ctx context.Context, shiftID uint) error
}
