package domain

// TokenPair is returned to clients on login.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// InvalidationMarker is the single-slot record of the last token explicitly
// invalidated for a user. Both fields are nil until the first invalidation;
// later invalidations overwrite the slot.
type InvalidationMarker struct {
	TokenID            *string
	CutoffEpochSeconds *int64
}

// IsSet reports whether the marker has ever been written.
func (m InvalidationMarker) IsSet() bool {
	return m.TokenID != nil && m.CutoffEpochSeconds != nil
}
