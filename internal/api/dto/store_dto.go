package dto

import (
	"time"

	"github.com/storefront-labs/storefront-service/internal/domain"
)

// CreateStoreRequest payload for POST /v1/stores.
type CreateStoreRequest struct {
	Name        string `json:"name" validate:"required,min=6"`
	Description string `json:"description" validate:"required,min=12,max=100"`
}

// UpdateStoreRequest payload for PATCH /v1/stores/:storeId.
type UpdateStoreRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=6"`
	Description *string `json:"description" validate:"omitempty,min=12,max=100"`
	Active      *bool   `json:"active"`
}

// StoreResponse is the public view of a store.
type StoreResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewStoreResponse maps a domain store.
func NewStoreResponse(s *domain.Store) StoreResponse {
	return StoreResponse{
		ID:          s.ID,
		OwnerID:     s.OwnerID,
		Name:        s.Name,
		Description: s.Description,
		Active:      s.Active,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// NewStoreListResponse maps a page of stores.
func NewStoreListResponse(stores []domain.Store) []StoreResponse {
	out := make([]StoreResponse, 0, len(stores))
	for i := range stores {
		out = append(out, NewStoreResponse(&stores[i]))
	}
	return out
}
