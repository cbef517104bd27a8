package domain

import "time"

// Store groups products under a single owning user.
type Store struct {
	ID          string
	OwnerID     string
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
