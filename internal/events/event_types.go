package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered   EventType = "user_registered"
	EventTokenInvalidated EventType = "token_invalidated"
	EventStoreCreated     EventType = "store_created"
	EventProductCreated   EventType = "product_created"
	EventOrderPlaced      EventType = "order_placed"
	EventReviewAdded      EventType = "review_added"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id"`
	SubjectID string      `json:"subject_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// New stamps an event with a fresh id.
func New(eventType EventType, actorID, subjectID string, at time.Time, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ActorID:   actorID,
		SubjectID: subjectID,
		Timestamp: at.UTC(),
		Payload:   payload,
	}
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// TokenInvalidatedPayload payload. The token itself is never included.
type TokenInvalidatedPayload struct {
	TokenID            string `json:"token_id"`
	CutoffEpochSeconds int64  `json:"cutoff_epoch_seconds"`
}

// StoreCreatedPayload payload.
type StoreCreatedPayload struct {
	Name string `json:"name"`
}

// ProductCreatedPayload payload.
type ProductCreatedPayload struct {
	StoreID string `json:"store_id"`
	Name    string `json:"name"`
}

// OrderPlacedPayload payload.
type OrderPlacedPayload struct {
	OrderNumber string  `json:"order_number"`
	TotalPrice  float64 `json:"total_price"`
	Items       int     `json:"items"`
}

// ReviewAddedPayload payload.
type ReviewAddedPayload struct {
	ProductID string `json:"product_id"`
	Stars     int    `json:"stars"`
}
