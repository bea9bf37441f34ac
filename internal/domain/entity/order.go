package entity

import (
	"time"

	"github.com/liupeizhou/coffee-pos/internal/domain/enum"
)

// Order is one finalized checkout. Rows are written once and never amended;
// subtotal/discount/total/change are computed by the register at creation
// time and stored as-is.
type Order struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	OrderNumber   string           `gorm:"size:100;not null;unique" json:"order_number"`
	Subtotal      float64          `gorm:"not null" json:"subtotal"`
	Discount      float64          `gorm:"default:0" json:"discount"`
	Total         float64          `gorm:"not null" json:"total"`
	PaymentMethod *string          `gorm:"size:50" json:"payment_method,omitempty"`
	AmountPaid    float64          `gorm:"default:0" json:"amount_paid"`
	Change        float64          `gorm:"column:change;default:0" json:"change"`
	Status        enum.OrderStatus `gorm:"size:50;default:'completed'" json:"status"`
	Notes         *string          `gorm:"type:text" json:"notes,omitempty"`
	StaffID       *uint            `gorm:"index" json:"staff_id,omitempty"`
	ShiftID       *uint            `gorm:"index" json:"shift_id,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one line of an order. Product name and unit price are
// snapshots taken at checkout so historical orders stay stable when the
// catalog changes later.
type OrderItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OrderID     uint      `gorm:"not null;index" json:"order_id"`
	ProductID   uint      `gorm:"not null;index" json:"product_id"`
	ProductName string    `gorm:"size:255;not null" json:"product_name"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	UnitPrice   float64   `gorm:"not null" json:"unit_price"`
	Size        *string   `gorm:"size:50" json:"size,omitempty"`
	Temperature *string   `gorm:"size:50" json:"temperature,omitempty"`
	Notes       *string   `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	Order Order `gorm:"foreignKey:OrderID" json:"-"`
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
