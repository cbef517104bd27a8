package domain

import "time"

// Product is an item sold by a store. OwnerID mirrors the owning store's
// owner so ownership checks need a single lookup.
type Product struct {
	ID          string
	StoreID     string
	OwnerID     string
	Name        string
	Description string
	Quantity    int
	MinQuantity int
	UnitPrice   float64
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
