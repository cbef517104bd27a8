package dto

import (
	"time"

	"github.com/storefront-labs/storefront-service/internal/domain"
)

// CreateProductRequest payload for POST /v1/stores/:storeId/products.
type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required,min=12,max=100"`
	Quantity    *int     `json:"quantity" validate:"required,min=0"`
	MinQuantity *int     `json:"minQuantity" validate:"required,min=0"`
	UnitPrice   *float64 `json:"unitPrice" validate:"required,gt=0"`
}

// UpdateProductRequest payload for PATCH /v1/products/:productId.
type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	Description *string  `json:"description" validate:"omitempty,min=12,max=100"`
	Quantity    *int     `json:"quantity" validate:"omitempty,min=0"`
	MinQuantity *int     `json:"minQuantity" validate:"omitempty,min=0"`
	UnitPrice   *float64 `json:"unitPrice" validate:"omitempty,gt=0"`
	Active      *bool    `json:"active"`
}

// ProductResponse is the public view of a product.
type ProductResponse struct {
	ID          string    `json:"id"`
	StoreID     string    `json:"storeId"`
	OwnerID     string    `json:"ownerId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	MinQuantity int       `json:"minQuantity"`
	UnitPrice   float64   `json:"unitPrice"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewProductResponse maps a domain product.
func NewProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		StoreID:     p.StoreID,
		OwnerID:     p.OwnerID,
		Name:        p.Name,
		Description: p.Description,
		Quantity:    p.Quantity,
		MinQuantity: p.MinQuantity,
		UnitPrice:   p.UnitPrice,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// NewProductListResponse maps a page of products.
func NewProductListResponse(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, NewProductResponse(&products[i]))
	}
	return out
}
