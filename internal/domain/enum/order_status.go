package enum

// OrderStatus is the state of an order. Orders are written once at checkout,
// so in practice every row is completed.
type OrderStatus string

const (
	OrderStatusCompleted OrderStatus = "completed"
)
