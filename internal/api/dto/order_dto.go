package dto

import (
	"time"

	"github.com/storefront-labs/storefront-service/internal/domain"
)

// OrderItemRequest is one line of an order payload.
type OrderItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  *int   `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest payload for POST /v1/orders.
type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateOrderRequest payload for PATCH /v1/orders/:orderId.
type UpdateOrderRequest struct {
	Items  []OrderItemRequest `json:"items" validate:"omitempty,min=1,dive"`
	Status *string            `json:"status" validate:"omitempty,oneof=completed"`
}

// ToItems maps validated request lines to domain items. Nil stays nil.
func ToItems(lines []OrderItemRequest) []domain.OrderItem {
	if lines == nil {
		return nil
	}
	items := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, domain.OrderItem{ProductID: line.ProductID, Quantity: *line.Quantity})
	}
	return items
}

// OrderResponse is the public view of an order.
type OrderResponse struct {
	ID          string             `json:"id"`
	OrderNumber string             `json:"orderNumber"`
	OwnerID     string             `json:"ownerId"`
	Items       []domain.OrderItem `json:"items"`
	TotalPrice  float64            `json:"totalPrice"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// NewOrderResponse maps a domain order.
func NewOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		OwnerID:     o.OwnerID,
		Items:       o.Items,
		TotalPrice:  o.TotalPrice,
		Status:      string(o.Status),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// NewOrderListResponse maps a page of orders.
func NewOrderListResponse(orders []domain.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, NewOrderResponse(&orders[i]))
	}
	return out
}
