package auth

import (
	"context"
	"time"

	"github.com/storefront-labs/storefront-service/internal/domain"
)

// InvalidationGrace is subtracted from the invalidation time to form the
// stored cutoff.
const InvalidationGrace = 30 * time.Minute

// MarkerStore persists a user's invalidation marker as one atomic write.
type MarkerStore interface {
	SetInvalidationMarker(ctx context.Context, userID string, marker domain.InvalidationMarker) error
}

// NewInvalidationMarker builds the marker naming tokenID, with a cutoff of
// now minus InvalidationGrace in whole epoch seconds.
func NewInvalidationMarker(tokenID string, now time.Time) domain.InvalidationMarker {
	id := tokenID
	cutoff := now.Add(-InvalidationGrace).Unix()
	return domain.InvalidationMarker{TokenID: &id, CutoffEpochSeconds: &cutoff}
}

// IsInvalidated reports whether claims name the token recorded in marker.
// The cutoff must be positive and strictly before the token's expiry.
func IsInvalidated(marker domain.InvalidationMarker, claims *Claims) bool {
	if !marker.IsSet() || claims == nil || claims.ExpiresAt == nil {
		return false
	}
	if *marker.TokenID != claims.ID {
		return false
	}
	cutoff := *marker.CutoffEpochSeconds
	return cutoff > 0 && cutoff < claims.ExpiresAt.Unix()
}

// Invalidate records tokenID as the user's invalidated token, replacing any
// earlier marker.
func Invalidate(ctx context.Context, store MarkerStore, userID, tokenID string, now time.Time) (domain.InvalidationMarker, error) {
	marker := NewInvalidationMarker(tokenID, now)
	if err := store.SetInvalidationMarker(ctx, userID, marker); err != nil {
		return domain.InvalidationMarker{}, err
	}
	return marker, nil
}
