package service

import (
	"context"
	"fmt"

	"github.com/liupeizhou/coffee-pos/internal/domain/entity"
	"github.com/liupeizhou/coffee-pos/internal/domain/enum"
	"github.com/liupeizhou/coffee-pos/internal/domain/repository"
	"github.com/liupeizhou/coffee-pos/pkg/apperror"
	"github.com/liupeizhou/coffee-pos/pkg/utils"
)

const defaultOrderLimit = 50

// OrderService handles the order ledger. Orders are immutable once created;
// the register computes subtotal/discount/total/change and the ledger stores
// them as-is.
type OrderService struct {
	orderRepo repository.OrderRepository
	numbers   *utils.OrderNumberGenerator
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		numbers:   utils.NewOrderNumberGenerator(),
	}
}

// OrderItemInput represents one line item of an order draft
type OrderItemInput struct {
	ProductID   uint
	ProductName string
	Quantity    int
	UnitPrice   float64
	Size        *string
	Temperature *string
	Notes       *string
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	Subtotal      float64
	Discount      float64
	Total         float64
	PaymentMethod *string
	AmountPaid    float64
	Change        float64
	Notes         *string
	StaffID       *uint
	ShiftID       *uint
	Items         []OrderItemInput
}

// CreateOrderResult is the identifier pair returned to the register
type CreateOrderResult struct {
	ID          uint   `json:"id"`
	OrderNumber string `json:"order_number"`
}

// CreateOrder persists an order and its line items atomically. When a shift
// is attached, the shift's cached totals are refreshed as part of the same
// write; that recomputation is the contract that keeps shift totals correct.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*CreateOrderResult, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Order must contain at least one item")
	}

	items := make([]entity.OrderItem, 0, len(input.Items))
	for i, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Item %d has a non-positive quantity", i+1))
		}
		items = append(items, entity.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Size:        item.Size,
			Temperature: item.Temperature,
			Notes:       item.Notes,
		})
	}

	order := &entity.Order{
		OrderNumber:   s.numbers.Next(),
		Subtotal:      input.Subtotal,
		Discount:      input.Discount,
		Total:         input.Total,
		PaymentMethod: input.PaymentMethod,
		AmountPaid:    input.AmountPaid,
		Change:        input.Change,
		Status:        enum.OrderStatusCompleted,
		Notes:         input.Notes,
		StaffID:       input.StaffID,
		ShiftID:       input.ShiftID,
	}

	if err := s.orderRepo.CreateWithItems(ctx, order, items); err != nil {
		return nil, err
	}

	return &CreateOrderResult{ID: order.ID, OrderNumber: order.OrderNumber}, nil
}

// ListOrders returns the most recent orders, newest first
func (s *OrderService) ListOrders(ctx context.Context, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = defaultOrderLimit
	}
	return s.orderRepo.List(ctx, limit)
}

// GetOrderItems returns the line items of one order
func (s *OrderService) GetOrderItems(ctx context.Context, orderID uint) ([]entity.OrderItem, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return s.orderRepo.ListItems(ctx, orderID)
}
