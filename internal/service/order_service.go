package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/storefront-labs/storefront-service/internal/clock"
	"github.com/storefront-labs/storefront-service/internal/domain"
	"github.com/storefront-labs/storefront-service/internal/events"
	"github.com/storefront-labs/storefront-service/internal/repository"
	apperrors "github.com/storefront-labs/storefront-service/pkg/util"
)

// Public messages for order failures.
const (
	MsgNotOrderOwner     = "Please make sure the order exist and you are the owner"
	MsgNoOrderItems      = "Please add valid items to your order"
	MsgUnknownProducts   = "There are some non existing products within your order"
	MsgOrderCompleted    = "This order is already completed"
	MsgInvalidOrderState = "Please provide a valid status"
	MsgLoginRequired     = "Please make sure you are logged in"
)

// orderNumberAttempts bounds retries when a generated order number collides.
const orderNumberAttempts = 3

// OrderService places and manages orders.
type OrderService struct {
	orders     repository.OrderRepository
	products   repository.ProductRepository
	dispatcher events.Dispatcher
	clock      clock.Clock
	logger     *zap.Logger
}

// OrderPatch carries the fields to change; nil fields are left as is.
type OrderPatch struct {
	Items  []domain.OrderItem
	Status *domain.OrderStatus
}

// NewOrderService constructs the service.
func NewOrderService(deps CatalogDependencies) *OrderService {
	deps = deps.withDefaults()
	return &OrderService{
		orders:     deps.OrderRepo,
		products:   deps.ProductRepo,
		dispatcher: deps.Dispatcher,
		clock:      deps.Clock,
		logger:     deps.Logger,
	}
}

// Create places a pending order for actor. Every product must exist; the
// total is priced from the current unit prices.
func (s *OrderService) Create(ctx context.Context, actor *domain.User, items []domain.OrderItem) (*domain.Order, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized(MsgLoginRequired)
	}
	total, err := s.price(ctx, items)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		OwnerID:    actor.ID,
		Items:      items,
		TotalPrice: total,
		Status:     domain.OrderStatusPending,
	}
	for attempt := 1; ; attempt++ {
		order.OrderNumber = generateOrderNumber(s.clock.Now())
		err = s.orders.Create(ctx, order)
		if !errors.Is(err, repository.ErrConflict) || attempt == orderNumberAttempts {
			break
		}
		s.logger.Warn("order number collision; retrying", zap.String("order_number", order.OrderNumber))
	}
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.New(events.EventOrderPlaced, actor.ID, order.ID, s.clock.Now(),
		events.OrderPlacedPayload{OrderNumber: order.OrderNumber, TotalPrice: order.TotalPrice, Items: len(order.Items)}))
	return order, nil
}

// Get returns an order placed by actor.
func (s *OrderService) Get(ctx context.Context, actor *domain.User, id string) (*domain.Order, error) {
	if actor == nil {
		return nil, apperrors.NewForbidden(MsgNotOrderOwner)
	}
	order, err := s.orders.GetOwned(ctx, id, actor.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewForbidden(MsgNotOrderOwner)
		}
		return nil, apperrors.NewInternalError(err)
	}
	return order, nil
}

// List returns every order. Admin only.
func (s *OrderService) List(ctx context.Context, actor *domain.User, limit, offset int) ([]domain.Order, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	orders, err := s.orders.List(ctx, limit, offset)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return orders, nil
}

// ListMine returns the orders placed by actor.
func (s *OrderService) ListMine(ctx context.Context, actor *domain.User, limit, offset int) ([]domain.Order, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized(MsgLoginRequired)
	}
	orders, err := s.orders.ListByOwner(ctx, actor.ID, limit, offset)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return orders, nil
}

// Update replaces the items of a pending order or marks it completed.
// Completed orders are final.
func (s *OrderService) Update(ctx context.Context, actor *domain.User, id string, patch OrderPatch) (*domain.Order, error) {
	order, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if order.Status == domain.OrderStatusCompleted {
		return nil, apperrors.NewConflict(MsgOrderCompleted, map[string]any{"orderId": id})
	}
	if patch.Items != nil {
		total, err := s.price(ctx, patch.Items)
		if err != nil {
			return nil, err
		}
		order.Items = patch.Items
		order.TotalPrice = total
	}
	if patch.Status != nil {
		if *patch.Status != domain.OrderStatusCompleted {
			return nil, apperrors.NewValidationError(MsgInvalidOrderState, map[string]any{"field": "status"})
		}
		order.Status = *patch.Status
	}
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return order, nil
}

// Delete removes an order placed by actor.
func (s *OrderService) Delete(ctx context.Context, actor *domain.User, id string) error {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return err
	}
	if err := s.orders.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewForbidden(MsgNotOrderOwner)
		}
		return apperrors.NewInternalError(err)
	}
	return nil
}

// price sums unit price times quantity over items. A product id may
// appear on several lines.
func (s *OrderService) price(ctx context.Context, items []domain.OrderItem) (float64, error) {
	if len(items) == 0 {
		return 0, apperrors.NewValidationError(MsgNoOrderItems, map[string]any{"field": "items"})
	}
	ids := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.Quantity < 1 || item.ProductID == "" {
			return 0, apperrors.NewValidationError(MsgNoOrderItems, map[string]any{"field": "items"})
		}
		if _, ok := seen[item.ProductID]; !ok {
			seen[item.ProductID] = struct{}{}
			ids = append(ids, item.ProductID)
		}
	}

	products, err := s.products.GetMany(ctx, ids)
	if err != nil {
		return 0, apperrors.NewInternalError(err)
	}
	prices := make(map[string]float64, len(products))
	for _, p := range products {
		prices[p.ID] = p.UnitPrice
	}
	if len(prices) != len(ids) {
		return 0, apperrors.NewDomainError(apperrors.CodeNotFound, MsgUnknownProducts, http.StatusNotFound, nil)
	}

	var total float64
	for _, item := range items {
		total += prices[item.ProductID] * float64(item.Quantity)
	}
	return total, nil
}

func (s *OrderService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}

// generateOrderNumber renders DD-MM-YYYY-XXXXX with five random uppercase
// hex characters.
func generateOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:5])
	return fmt.Sprintf("%02d-%02d-%04d-%s", now.Day(), int(now.Month()), now.Year(), suffix)
}
