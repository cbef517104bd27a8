package service

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/storefront-labs/storefront-service/internal/auth"
	"github.com/storefront-labs/storefront-service/internal/clock"
	"github.com/storefront-labs/storefront-service/internal/domain"
	"github.com/storefront-labs/storefront-service/internal/events"
	"github.com/storefront-labs/storefront-service/internal/repository"
)

type orderFixture struct {
	orders     *mockOrderRepo
	products   *mockProductRepo
	dispatcher *recordingDispatcher
	svc        *OrderService
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	f := &orderFixture{
		orders:     new(mockOrderRepo),
		products:   new(mockProductRepo),
		dispatcher: &recordingDispatcher{},
	}
	f.svc = NewOrderService(CatalogDependencies{
		OrderRepo:   f.orders,
		ProductRepo: f.products,
		Dispatcher:  f.dispatcher,
		Clock:       clock.Fake(testEpoch),
	})
	t.Cleanup(func() {
		f.orders.AssertExpectations(t)
		f.products.AssertExpectations(t)
	})
	return f
}

var buyer = &domain.User{ID: "buyer-1", Role: domain.RoleUser}

var catalog = []domain.Product{
	{ID: "p-1", UnitPrice: 2.5},
	{ID: "p-2", UnitPrice: 10},
}

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	f.products.On("GetMany", ctx, []string{"p-1", "p-2"}).Return(catalog, nil).Once()
	f.orders.On("Create", ctx, mock.AnythingOfType("*domain.Order")).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Order).ID = "o-1"
	}).Return(nil).Once()

	order, err := f.svc.Create(ctx, buyer, []domain.OrderItem{
		{ProductID: "p-1", Quantity: 4},
		{ProductID: "p-2", Quantity: 1},
		{ProductID: "p-1", Quantity: 2},
	})

	require.NoError(t, err)
	assert.Equal(t, "o-1", order.ID)
	assert.Equal(t, "buyer-1", order.OwnerID)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.InDelta(t, 25.0, order.TotalPrice, 1e-9)
	assert.Regexp(t, regexp.MustCompile(`^01-03-2026-[0-9A-F]{5}$`), order.OrderNumber)

	published := f.dispatcher.published()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventOrderPlaced, published[0].Type)
	assert.Equal(t, events.OrderPlacedPayload{OrderNumber: order.OrderNumber, TotalPrice: 25, Items: 3}, published[0].Payload)
}

func TestOrderService_CreateUnknownProduct(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	f.products.On("GetMany", ctx, []string{"p-1", "missing"}).Return(catalog[:1], nil).Once()

	_, err := f.svc.Create(ctx, buyer, []domain.OrderItem{
		{ProductID: "p-1", Quantity: 1},
		{ProductID: "missing", Quantity: 1},
	})

	requireDomainError(t, err, http.StatusNotFound, MsgUnknownProducts)
	f.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Empty(t, f.dispatcher.published())
}

func TestOrderService_CreateRejectsEmptyOrder(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.svc.Create(context.Background(), buyer, nil)
	requireDomainError(t, err, http.StatusBadRequest, MsgNoOrderItems)

	_, err = f.svc.Create(context.Background(), buyer, []domain.OrderItem{{ProductID: "p-1", Quantity: 0}})
	requireDomainError(t, err, http.StatusBadRequest, MsgNoOrderItems)
}

func TestOrderService_CreateRetriesCollidingNumber(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	f.products.On("GetMany", ctx, []string{"p-2"}).Return(catalog[1:], nil).Once()
	f.orders.On("Create", ctx, mock.Anything).Return(repository.ErrConflict).Once()
	f.orders.On("Create", ctx, mock.Anything).Return(nil).Once()

	order, err := f.svc.Create(ctx, buyer, []domain.OrderItem{{ProductID: "p-2", Quantity: 3}})

	require.NoError(t, err)
	assert.InDelta(t, 30.0, order.TotalPrice, 1e-9)
}

func TestOrderService_GetNotOwner(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	f.orders.On("GetOwned", ctx, "o-1", "buyer-1").Return(nil, repository.ErrNotFound).Once()

	_, err := f.svc.Get(ctx, buyer, "o-1")

	requireDomainError(t, err, http.StatusForbidden, MsgNotOrderOwner)
}

func TestOrderService_ListIsAdminOnly(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)

	_, err := f.svc.List(ctx, buyer, 10, 0)
	requireDomainError(t, err, http.StatusForbidden, auth.MsgForbiddenRole)

	f.orders.On("List", ctx, 10, 0).Return([]domain.Order{{ID: "o-1"}}, nil).Once()
	orders, err := f.svc.List(ctx, &domain.User{ID: "root", Role: domain.RoleAdmin}, 10, 0)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestOrderService_ListMine(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	f.orders.On("ListByOwner", ctx, "buyer-1", 20, 0).Return([]domain.Order{{ID: "o-1", OwnerID: "buyer-1"}}, nil).Once()

	orders, err := f.svc.ListMine(ctx, buyer, 20, 0)

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "o-1", orders[0].ID)
}

func TestOrderService_UpdateRepricesAndCompletes(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	existing := &domain.Order{ID: "o-1", OwnerID: "buyer-1", Status: domain.OrderStatusPending,
		Items: []domain.OrderItem{{ProductID: "p-1", Quantity: 1}}, TotalPrice: 2.5}
	f.orders.On("GetOwned", ctx, "o-1", "buyer-1").Return(existing, nil).Once()
	f.products.On("GetMany", ctx, []string{"p-2"}).Return(catalog[1:], nil).Once()
	f.orders.On("Update", ctx, existing).Return(nil).Once()

	completed := domain.OrderStatusCompleted
	order, err := f.svc.Update(ctx, buyer, "o-1", OrderPatch{
		Items:  []domain.OrderItem{{ProductID: "p-2", Quantity: 2}},
		Status: &completed,
	})

	require.NoError(t, err)
	assert.InDelta(t, 20.0, order.TotalPrice, 1e-9)
	assert.Equal(t, domain.OrderStatusCompleted, order.Status)
}

func TestOrderService_UpdateCompletedOrder(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	f.orders.On("GetOwned", ctx, "o-1", "buyer-1").
		Return(&domain.Order{ID: "o-1", OwnerID: "buyer-1", Status: domain.OrderStatusCompleted}, nil).Once()

	completed := domain.OrderStatusCompleted
	_, err := f.svc.Update(ctx, buyer, "o-1", OrderPatch{Status: &completed})

	requireDomainError(t, err, http.StatusConflict, MsgOrderCompleted)
}

func TestOrderService_UpdateRejectsPendingStatus(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	f.orders.On("GetOwned", ctx, "o-1", "buyer-1").
		Return(&domain.Order{ID: "o-1", OwnerID: "buyer-1", Status: domain.OrderStatusPending}, nil).Once()

	pending := domain.OrderStatusPending
	_, err := f.svc.Update(ctx, buyer, "o-1", OrderPatch{Status: &pending})

	requireDomainError(t, err, http.StatusBadRequest, MsgInvalidOrderState)
	f.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestOrderService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	f.orders.On("GetOwned", ctx, "o-1", "buyer-1").Return(&domain.Order{ID: "o-1", OwnerID: "buyer-1"}, nil).Once()
	f.orders.On("Delete", ctx, "o-1").Return(nil).Once()

	require.NoError(t, f.svc.Delete(ctx, buyer, "o-1"))
}

func TestOrderService_RepositoryFailureIsInternal(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	f.orders.On("ListByOwner", ctx, "buyer-1", 20, 0).Return(nil, errors.New("connection reset")).Once()

	_, err := f.svc.ListMine(ctx, buyer, 20, 0)

	requireDomainError(t, err, http.StatusInternalServerError, "internal server error")
}

func TestGenerateOrderNumber(t *testing.T) {
	number := generateOrderNumber(testEpoch)
	assert.Regexp(t, `^01-03-2026-[0-9A-F]{5}$`, number)
}
