package request

// OrderItemRequest represents one line item of a create order request
type OrderItemRequest struct {
	ProductID   uint    `json:"product_id" binding:"required"`
	ProductName string  `json:"product_name" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" binding:"gte=0"`
	Size        *string `json:"size"`
	Temperature *string `json:"temperature"`
	Notes       *string `json:"notes"`
}

// CreateOrderRequest represents a create order request
type CreateOrderRequest struct {
	Subtotal      float64            `json:"subtotal" binding:"gte=0"`
	Discount      float64            `json:"discount" binding:"gte=0"`
	Total         float64            `json:"total" binding:"gte=0"`
	PaymentMethod *string            `json:"payment_method"`
	AmountPaid    float64            `json:"amount_paid" binding:"gte=0"`
	Change        float64            `json:"change" binding:"gte=0"`
	Notes         *string            `json:"notes"`
	ShiftID       *uint              `json:"shift_id"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}
