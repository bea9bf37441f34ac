package repository

import (
	"context"

	"github.com/liupeizhou/coffee-pos/internal/domain/entity"
)

// OrderRepository defines order ledger persistence operations. Orders are
// append-only: there is no update or delete.
type OrderRepository interface {
	// CreateWithItems inserts the order and its line items in a single
	// transaction. When the order carries a shift id, the shift's cached
	// totals are recomputed inside the same transaction.
	CreateWithItems(ctx context.Context, order *entity.Order, items []entity.OrderItem) error
	GetByID(ctx context.Context, id uint) (*entity.Order, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*entity.Order, error)
	// List returns the most recent orders, newest first.
	List(ctx context.Context, limit int) ([]entity.Order, error)
	// ListByDate returns the orders created on one YYYY-MM-DD day.
	ListByDate(ctx context.Context, date string) ([]entity.Order, error)
	ListItems(ctx context.Context, orderID uint) ([]entity.OrderItem, error)
}
