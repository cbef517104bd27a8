package dto

import (
	"time"

	"github.com/storefront-labs/storefront-service/internal/domain"
)

// CreateReviewRequest payload for POST /v1/reviews.
type CreateReviewRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content" validate:"required,min=12,max=100"`
	Stars     *int   `json:"stars" validate:"required,min=0,max=5"`
}

// UpdateReviewRequest payload for PATCH /v1/reviews/:reviewId.
type UpdateReviewRequest struct {
	Title   *string `json:"title" validate:"omitempty,min=1"`
	Content *string `json:"content" validate:"omitempty,min=12,max=100"`
	Stars   *int    `json:"stars" validate:"omitempty,min=0,max=5"`
}

// ReviewResponse is the public view of a review.
type ReviewResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	OwnerID   string    `json:"ownerId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Stars     int       `json:"stars"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewReviewResponse maps a domain review.
func NewReviewResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		ProductID: r.ProductID,
		OwnerID:   r.OwnerID,
		Title:     r.Title,
		Content:   r.Content,
		Stars:     r.Stars,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// NewReviewListResponse maps a page of reviews.
func NewReviewListResponse(reviews []domain.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, NewReviewResponse(&reviews[i]))
	}
	return out
}
