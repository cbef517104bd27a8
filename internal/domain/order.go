package domain

import "time"

// OrderStatus tracks fulfilment of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
)

// OrderItem is one line of an order.
type OrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Order is a purchase placed by a user. TotalPrice is computed from the
// product unit prices at the time the items were set.
type Order struct {
	ID          string
	OrderNumber string
	OwnerID     string
	Items       []OrderItem
	TotalPrice  float64
	Status      OrderStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
