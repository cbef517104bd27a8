package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/storefront-labs/storefront-service/internal/domain"
)

func TestNewInvalidationMarker(t *testing.T) {
	now := testEpoch.Add(500 * time.Millisecond)

	m := NewInvalidationMarker("jti-1", now)

	require.True(t, m.IsSet())
	assert.Equal(t, "jti-1", *m.TokenID)
	assert.Equal(t, testEpoch.Add(-30*time.Minute).Unix(), *m.CutoffEpochSeconds)
}

func TestIsInvalidated_PointInvalidation(t *testing.T) {
	codec, fc := newTestCodec(testAuthConfig())

	rawT, err := codec.Issue(KindAccess, "user-1", "a@x.com")
	require.NoError(t, err)
	rawU, err := codec.Issue(KindAccess, "user-1", "a@x.com")
	require.NoError(t, err)
	tokT, err := codec.Verify(KindAccess, rawT)
	require.NoError(t, err)
	tokU, err := codec.Verify(KindAccess, rawU)
	require.NoError(t, err)

	fc.Advance(time.Minute)
	marker := NewInvalidationMarker(tokT.ID, fc.Now())

	assert.True(t, IsInvalidated(marker, tokT))
	assert.False(t, IsInvalidated(marker, tokU))
}

func TestIsInvalidated_LastWriteWins(t *testing.T) {
	codec, fc := newTestCodec(testAuthConfig())

	rawT, _ := codec.Issue(KindAccess, "user-1", "a@x.com")
	rawU, _ := codec.Issue(KindAccess, "user-1", "a@x.com")
	tokT, err := codec.Verify(KindAccess, rawT)
	require.NoError(t, err)
	tokU, err := codec.Verify(KindAccess, rawU)
	require.NoError(t, err)

	slot := NewInvalidationMarker(tokT.ID, fc.Now())
	assert.True(t, IsInvalidated(slot, tokT))

	fc.Advance(time.Minute)
	slot = NewInvalidationMarker(tokU.ID, fc.Now())

	assert.False(t, IsInvalidated(slot, tokT))
	assert.True(t, IsInvalidated(slot, tokU))
}

func TestIsInvalidated_CutoffComparison(t *testing.T) {
	exp := testEpoch.Add(15 * time.Minute)
	claims := &Claims{}
	claims.ID = "jti-1"
	claims.ExpiresAt = jwtDate(exp)

	id := "jti-1"
	cases := []struct {
		name   string
		cutoff int64
		want   bool
	}{
		{name: "cutoff before expiry", cutoff: exp.Unix() - 1, want: true},
		{name: "cutoff equal to expiry", cutoff: exp.Unix(), want: false},
		{name: "cutoff after expiry", cutoff: exp.Unix() + 60, want: false},
		{name: "zero cutoff", cutoff: 0, want: false},
		{name: "negative cutoff", cutoff: -10, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cutoff := tc.cutoff
			marker := domain.InvalidationMarker{TokenID: &id, CutoffEpochSeconds: &cutoff}
			assert.Equal(t, tc.want, IsInvalidated(marker, claims))
		})
	}
}

func TestIsInvalidated_ClearMarker(t *testing.T) {
	claims := &Claims{}
	claims.ID = "jti-1"
	claims.ExpiresAt = jwtDate(testEpoch.Add(time.Hour))

	assert.False(t, IsInvalidated(domain.InvalidationMarker{}, claims))
	assert.False(t, IsInvalidated(NewInvalidationMarker("jti-1", testEpoch), nil))
}

func TestInvalidate_WritesMarker(t *testing.T) {
	store := new(mockUserStore)
	want := NewInvalidationMarker("jti-1", testEpoch)
	store.On("SetInvalidationMarker", mock.Anything, "user-1", want).Return(nil).Once()

	got, err := Invalidate(context.Background(), store, "user-1", "jti-1", testEpoch)

	require.NoError(t, err)
	assert.Equal(t, want, got)
	store.AssertExpectations(t)
}

func TestInvalidate_StoreError(t *testing.T) {
	store := new(mockUserStore)
	store.On("SetInvalidationMarker", mock.Anything, "user-1", mock.Anything).Return(errors.New("write failed"))

	_, err := Invalidate(context.Background(), store, "user-1", "jti-1", testEpoch)

	assert.EqualError(t, err, "write failed")
}
