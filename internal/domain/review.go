package domain

import "time"

// Review is a user's rating of a product. A user reviews a product at most
// once.
type Review struct {
	ID        string
	ProductID string
	OwnerID   string
	Title     string
	Content   string
	Stars     int
	CreatedAt time.Time
	UpdatedAt time.Time
}
