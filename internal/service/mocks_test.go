package service

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"

	"github.com/storefront-labs/storefront-service/internal/domain"
	"github.com/storefront-labs/storefront-service/internal/events"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*domain.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*domain.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if u, ok := args.Get(0).([]domain.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) SetInvalidationMarker(ctx context.Context, userID string, marker domain.InvalidationMarker) error {
	args := m.Called(ctx, userID, marker)
	return args.Error(0)
}

type mockStoreRepo struct{ mock.Mock }

func (m *mockStoreRepo) Create(ctx context.Context, store *domain.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *mockStoreRepo) Update(ctx context.Context, store *domain.Store) error {
	args := m.Called(ctx, store)
	return args.Error(0)
}

func (m *mockStoreRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockStoreRepo) GetByID(ctx context.Context, id string) (*domain.Store, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*domain.Store); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStoreRepo) GetOwned(ctx context.Context, id, ownerID string) (*domain.Store, error) {
	args := m.Called(ctx, id, ownerID)
	if s, ok := args.Get(0).(*domain.Store); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStoreRepo) List(ctx context.Context, limit, offset int) ([]domain.Store, error) {
	args := m.Called(ctx, limit, offset)
	if s, ok := args.Get(0).([]domain.Store); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepo) Update(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*domain.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) GetOwned(ctx context.Context, id, storeID, ownerID string) (*domain.Product, error) {
	args := m.Called(ctx, id, storeID, ownerID)
	if p, ok := args.Get(0).(*domain.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) ListByStore(ctx context.Context, storeID string, limit, offset int) ([]domain.Product, error) {
	args := m.Called(ctx, storeID, limit, offset)
	if p, ok := args.Get(0).([]domain.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) GetMany(ctx context.Context, ids []string) ([]domain.Product, error) {
	args := m.Called(ctx, ids)
	if p, ok := args.Get(0).([]domain.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockOrderRepo struct{ mock.Mock }

func (m *mockOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockOrderRepo) Update(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockOrderRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockOrderRepo) GetOwned(ctx context.Context, id, ownerID string) (*domain.Order, error) {
	args := m.Called(ctx, id, ownerID)
	if o, ok := args.Get(0).(*domain.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) List(ctx context.Context, limit, offset int) ([]domain.Order, error) {
	args := m.Called(ctx, limit, offset)
	if o, ok := args.Get(0).([]domain.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]domain.Order, error) {
	args := m.Called(ctx, ownerID, limit, offset)
	if o, ok := args.Get(0).([]domain.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockReviewRepo struct{ mock.Mock }

func (m *mockReviewRepo) Create(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *mockReviewRepo) Update(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *mockReviewRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockReviewRepo) GetOwned(ctx context.Context, id, ownerID string) (*domain.Review, error) {
	args := m.Called(ctx, id, ownerID)
	if r, ok := args.Get(0).(*domain.Review); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReviewRepo) ExistsFor(ctx context.Context, ownerID, productID string) (bool, error) {
	args := m.Called(ctx, ownerID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *mockReviewRepo) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]domain.Review, error) {
	args := m.Called(ctx, productID, limit, offset)
	if r, ok := args.Get(0).([]domain.Review); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

// mockCache returns prepared redis command results.
type mockCache struct{ mock.Mock }

func (m *mockCache) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	return args.Get(0).(*redis.StringCmd)
}

func (m *mockCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)
	return args.Get(0).(*redis.StatusCmd)
}

func (m *mockCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	args := m.Called(ctx, keys)
	return args.Get(0).(*redis.IntCmd)
}

type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) published() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]events.Event(nil), d.events...)
}
