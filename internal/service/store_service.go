package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/storefront-labs/storefront-service/internal/clock"
	"github.com/storefront-labs/storefront-service/internal/domain"
	"github.com/storefront-labs/storefront-service/internal/events"
	"github.com/storefront-labs/storefront-service/internal/repository"
	apperrors "github.com/storefront-labs/storefront-service/pkg/util"
)

// MsgNotStoreOwner is returned when the caller does not own the store.
const MsgNotStoreOwner = "Please make sure the store exist and you are the owner"

// StoreService manages stores.
type StoreService struct {
	stores     repository.StoreRepository
	products   repository.ProductRepository
	cache      *readThroughCache
	dispatcher events.Dispatcher
	clock      clock.Clock
	logger     *zap.Logger
}

// CatalogDependencies encapsulates collaborators shared by the store,
// product, order and review services.
type CatalogDependencies struct {
	StoreRepo   repository.StoreRepository
	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository
	ReviewRepo  repository.ReviewRepository
	Cache       CacheClient
	CacheTTL    time.Duration
	Dispatcher  events.Dispatcher
	Clock       clock.Clock
	Logger      *zap.Logger
}

func (d CatalogDependencies) withDefaults() CatalogDependencies {
	if d.Clock == nil {
		d.Clock = clock.Real()
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	return d
}

// StoreInput is the payload for creating a store.
type StoreInput struct {
	Name        string
	Description string
}

// StorePatch carries the fields to change; nil fields are left as is.
type StorePatch struct {
	Name        *string
	Description *string
	Active      *bool
}

// NewStoreService constructs the service.
func NewStoreService(deps CatalogDependencies) *StoreService {
	deps = deps.withDefaults()
	return &StoreService{
		stores:     deps.StoreRepo,
		products:   deps.ProductRepo,
		cache:      newReadThroughCache(deps.Cache, deps.CacheTTL, deps.Logger),
		dispatcher: deps.Dispatcher,
		clock:      deps.Clock,
		logger:     deps.Logger,
	}
}

// Create registers a store owned by actor.
func (s *StoreService) Create(ctx context.Context, actor *domain.User, input StoreInput) (*domain.Store, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("Unauthorized")
	}
	store := &domain.Store{
		OwnerID:     actor.ID,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Active:      true,
	}
	if err := s.stores.Create(ctx, store); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, apperrors.NewConflict("store already exists", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}

	if s.dispatcher != nil {
		event := events.New(events.EventStoreCreated, actor.ID, store.ID, s.clock.Now(),
			events.StoreCreatedPayload{Name: store.Name})
		if err := s.dispatcher.Publish(ctx, event); err != nil {
			s.logger.Warn("event handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
		}
	}
	return store, nil
}

// Get returns a store, consulting the cache first.
func (s *StoreService) Get(ctx context.Context, id string) (*domain.Store, error) {
	var cached domain.Store
	if s.cache.get(ctx, storeCacheKey(id), &cached) {
		return &cached, nil
	}
	store, err := s.stores.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("store", map[string]any{"storeId": id})
		}
		return nil, apperrors.NewInternalError(err)
	}
	s.cache.set(ctx, storeCacheKey(id), store)
	return store, nil
}

// List returns a page of stores.
func (s *StoreService) List(ctx context.Context, limit, offset int) ([]domain.Store, error) {
	stores, err := s.stores.List(ctx, limit, offset)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return stores, nil
}

// AuthorizeOwner returns the store when actor owns it. A missing store and
// a foreign store are reported the same way.
func (s *StoreService) AuthorizeOwner(ctx context.Context, actor *domain.User, storeID string) (*domain.Store, error) {
	if actor == nil {
		return nil, apperrors.NewForbidden(MsgNotStoreOwner)
	}
	store, err := s.stores.GetOwned(ctx, storeID, actor.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewForbidden(MsgNotStoreOwner)
		}
		return nil, apperrors.NewInternalError(err)
	}
	return store, nil
}

// Update applies patch to a store owned by actor.
func (s *StoreService) Update(ctx context.Context, actor *domain.User, storeID string, patch StorePatch) (*domain.Store, error) {
	store, err := s.AuthorizeOwner(ctx, actor, storeID)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		store.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		store.Description = *patch.Description
	}
	if patch.Active != nil {
		store.Active = *patch.Active
	}
	if err := s.stores.Update(ctx, store); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	s.cache.del(ctx, storeCacheKey(store.ID))
	return store, nil
}

// Delete removes a store owned by actor together with its products.
func (s *StoreService) Delete(ctx context.Context, actor *domain.User, storeID string) error {
	if _, err := s.AuthorizeOwner(ctx, actor, storeID); err != nil {
		return err
	}

	keys := []string{storeCacheKey(storeID)}
	if s.cache.enabled() && s.products != nil {
		keys = append(keys, s.productKeys(ctx, storeID)...)
	}

	if err := s.stores.Delete(ctx, storeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewForbidden(MsgNotStoreOwner)
		}
		return apperrors.NewInternalError(err)
	}
	s.cache.del(ctx, keys...)
	return nil
}

func (s *StoreService) productKeys(ctx context.Context, storeID string) []string {
	const pageSize = 100
	var keys []string
	for offset := 0; ; offset += pageSize {
		page, err := s.products.ListByStore(ctx, storeID, pageSize, offset)
		if err != nil {
			s.logger.Warn("listing products for cache eviction failed", zap.String("store_id", storeID), zap.Error(err))
			return keys
		}
		for _, p := range page {
			keys = append(keys, productCacheKey(p.ID))
		}
		if len(page) < pageSize {
			return keys
		}
	}
}
