package repository

import (
	"context"

	"github.com/liupeizhou/coffee-pos/internal/domain/entity"
)

// StaffRepository defines staff persistence operations
type StaffRepository interface {
	Create(ctx context.Context, staff *entity.Staff) error
	GetByID(ctx context.Context, id uint) (*entity.Staff, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*entity.Staff, error)
	List(ctx context.Context) ([]entity.Staff, error)
	Update(ctx context.Context, staff *entity.Staff) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}
