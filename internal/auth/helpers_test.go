package auth

import (
	"context"
	"sync"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"

	"github.com/storefront-labs/storefront-service/internal/clock"
	"github.com/storefront-labs/storefront-service/internal/config"
	"github.com/storefront-labs/storefront-service/internal/domain"
)

var testEpoch = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		AccessTokenSecret:  "access-secret-for-tests",
		RefreshTokenSecret: "refresh-secret-for-tests",
		AccessTokenTTL:     15 * time.Minute,
		RefreshTokenTTL:    24 * time.Hour,
		BcryptCost:         4,
	}
}

func newTestCodec(cfg config.AuthConfig) (*TokenCodec, *clock.FakeClock) {
	fc := clock.Fake(testEpoch)
	return NewTokenCodec(cfg, fc), fc
}

type fakeRecorder struct {
	mu           sync.Mutex
	rejections   map[string]int
	configErrors int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{rejections: map[string]int{}}
}

func (r *fakeRecorder) AuthRejected(reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejections[reason]++
}

func (r *fakeRecorder) AuthConfigError() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configErrors++
}

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*domain.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserStore) SetInvalidationMarker(ctx context.Context, userID string, marker domain.InvalidationMarker) error {
	args := m.Called(ctx, userID, marker)
	return args.Error(0)
}

func jwtDate(t time.Time) *jwt.NumericDate {
	return jwt.NewNumericDate(t)
}
