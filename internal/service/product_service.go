package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/storefront-labs/storefront-service/internal/clock"
	"github.com/storefront-labs/storefront-service/internal/domain"
	"github.com/storefront-labs/storefront-service/internal/events"
	"github.com/storefront-labs/storefront-service/internal/repository"
	apperrors "github.com/storefront-labs/storefront-service/pkg/util"
)

// MsgNotProductOwner is returned when the caller does not own the product
// or its store.
const MsgNotProductOwner = "Please make sure the product and store exist and you are the owner of both"

// ProductService manages products within stores.
type ProductService struct {
	stores     *StoreService
	products   repository.ProductRepository
	cache      *readThroughCache
	dispatcher events.Dispatcher
	clock      clock.Clock
	logger     *zap.Logger
}

// ProductInput is the payload for creating a product.
type ProductInput struct {
	Name        string
	Description string
	Quantity    int
	MinQuantity int
	UnitPrice   float64
}

// ProductPatch carries the fields to change; nil fields are left as is.
type ProductPatch struct {
	Name        *string
	Description *string
	Quantity    *int
	MinQuantity *int
	UnitPrice   *float64
	Active      *bool
}

// NewProductService constructs the service. Store ownership checks are
// delegated to stores.
func NewProductService(stores *StoreService, deps CatalogDependencies) *ProductService {
	deps = deps.withDefaults()
	return &ProductService{
		stores:     stores,
		products:   deps.ProductRepo,
		cache:      newReadThroughCache(deps.Cache, deps.CacheTTL, deps.Logger),
		dispatcher: deps.Dispatcher,
		clock:      deps.Clock,
		logger:     deps.Logger,
	}
}

// Create adds a product to a store owned by actor.
func (s *ProductService) Create(ctx context.Context, actor *domain.User, storeID string, input ProductInput) (*domain.Product, error) {
	store, err := s.stores.AuthorizeOwner(ctx, actor, storeID)
	if err != nil {
		return nil, err
	}
	product := &domain.Product{
		StoreID:     store.ID,
		OwnerID:     actor.ID,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Quantity:    input.Quantity,
		MinQuantity: input.MinQuantity,
		UnitPrice:   input.UnitPrice,
		Active:      true,
	}
	if err := s.products.Create(ctx, product); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, apperrors.NewConflict("product already exists", nil)
		}
		return nil, apperrors.NewInternalError(err)
	}

	if s.dispatcher != nil {
		event := events.New(events.EventProductCreated, actor.ID, product.ID, s.clock.Now(),
			events.ProductCreatedPayload{StoreID: store.ID, Name: product.Name})
		if err := s.dispatcher.Publish(ctx, event); err != nil {
			s.logger.Warn("event handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
		}
	}
	return product, nil
}

// Get returns a product, consulting the cache first.
func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	var cached domain.Product
	if s.cache.get(ctx, productCacheKey(id), &cached) {
		return &cached, nil
	}
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("product", map[string]any{"productId": id})
		}
		return nil, apperrors.NewInternalError(err)
	}
	s.cache.set(ctx, productCacheKey(id), product)
	return product, nil
}

// ListByStore returns a page of the store's products. The store must exist.
func (s *ProductService) ListByStore(ctx context.Context, storeID string, limit, offset int) ([]domain.Product, error) {
	if _, err := s.stores.Get(ctx, storeID); err != nil {
		return nil, err
	}
	products, err := s.products.ListByStore(ctx, storeID, limit, offset)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return products, nil
}

// AuthorizeOwner returns the product when actor owns it and its store.
// storeID may be empty when the route does not name a store.
func (s *ProductService) AuthorizeOwner(ctx context.Context, actor *domain.User, storeID, productID string) (*domain.Product, error) {
	if actor == nil {
		return nil, apperrors.NewForbidden(MsgNotProductOwner)
	}
	product, err := s.products.GetOwned(ctx, productID, storeID, actor.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewForbidden(MsgNotProductOwner)
		}
		return nil, apperrors.NewInternalError(err)
	}
	return product, nil
}

// Update applies patch to a product owned by actor.
func (s *ProductService) Update(ctx context.Context, actor *domain.User, productID string, patch ProductPatch) (*domain.Product, error) {
	product, err := s.AuthorizeOwner(ctx, actor, "", productID)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		product.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Quantity != nil {
		product.Quantity = *patch.Quantity
	}
	if patch.MinQuantity != nil {
		product.MinQuantity = *patch.MinQuantity
	}
	if patch.UnitPrice != nil {
		product.UnitPrice = *patch.UnitPrice
	}
	if patch.Active != nil {
		product.Active = *patch.Active
	}
	if err := s.products.Update(ctx, product); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	s.cache.del(ctx, productCacheKey(product.ID))
	return product, nil
}

// Delete removes a product owned by actor.
func (s *ProductService) Delete(ctx context.Context, actor *domain.User, productID string) error {
	if _, err := s.AuthorizeOwner(ctx, actor, "", productID); err != nil {
		return err
	}
	if err := s.products.Delete(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewForbidden(MsgNotProductOwner)
		}
		return apperrors.NewInternalError(err)
	}
	s.cache.del(ctx, productCacheKey(productID))
	return nil
}
