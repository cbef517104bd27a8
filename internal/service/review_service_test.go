package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/storefront-labs/storefront-service/internal/clock"
	"github.com/storefront-labs/storefront-service/internal/domain"
	"github.com/storefront-labs/storefront-service/internal/events"
	"github.com/storefront-labs/storefront-service/internal/repository"
)

type reviewFixture struct {
	reviews    *mockReviewRepo
	products   *mockProductRepo
	dispatcher *recordingDispatcher
	svc        *ReviewService
}

func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()
	f := &reviewFixture{
		reviews:    new(mockReviewRepo),
		products:   new(mockProductRepo),
		dispatcher: &recordingDispatcher{},
	}
	f.svc = NewReviewService(CatalogDependencies{
		ReviewRepo:  f.reviews,
		ProductRepo: f.products,
		Dispatcher:  f.dispatcher,
		Clock:       clock.Fake(testEpoch),
	})
	t.Cleanup(func() {
		f.reviews.AssertExpectations(t)
		f.products.AssertExpectations(t)
	})
	return f
}

var reviewedProduct = &domain.Product{ID: "p-1", StoreID: "s-1", OwnerID: "owner-1", UnitPrice: 4}

func TestReviewService_Create(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture(t)
	f.products.On("GetByID", ctx, "p-1").Return(reviewedProduct, nil).Once()
	f.reviews.On("ExistsFor", ctx, "buyer-1", "p-1").Return(false, nil).Once()
	f.reviews.On("Create", ctx, mock.MatchedBy(func(r *domain.Review) bool {
		return r.OwnerID == "buyer-1" && r.ProductID == "p-1" && r.Title == "Great" && r.Stars == 5
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Review).ID = "r-1"
	}).Return(nil).Once()

	review, err := f.svc.Create(ctx, buyer, ReviewInput{ProductID: "p-1", Title: " Great ", Content: "works as advertised", Stars: 5})

	require.NoError(t, err)
	assert.Equal(t, "r-1", review.ID)
	published := f.dispatcher.published()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventReviewAdded, published[0].Type)
	assert.Equal(t, events.ReviewAddedPayload{ProductID: "p-1", Stars: 5}, published[0].Payload)
}

func TestReviewService_CreateMissingProduct(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture(t)
	f.products.On("GetByID", ctx, "nope").Return(nil, repository.ErrNotFound).Once()

	_, err := f.svc.Create(ctx, buyer, ReviewInput{ProductID: "nope", Title: "x", Content: "long enough text", Stars: 1})

	requireDomainError(t, err, http.StatusNotFound, MsgReviewedProductMissing)
}

func TestReviewService_CreateOwnProduct(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture(t)
	f.products.On("GetByID", ctx, "p-1").Return(reviewedProduct, nil).Once()

	_, err := f.svc.Create(ctx, owner, ReviewInput{ProductID: "p-1", Title: "Mine", Content: "the best thing I sell", Stars: 5})

	requireDomainError(t, err, http.StatusForbidden, MsgOwnProductReview)
	f.reviews.AssertNotCalled(t, "ExistsFor", mock.Anything, mock.Anything, mock.Anything)
}

func TestReviewService_CreateTwice(t *testing.T) {
	ctx := context.Background()

	t.Run("existing review", func(t *testing.T) {
		f := newReviewFixture(t)
		f.products.On("GetByID", ctx, "p-1").Return(reviewedProduct, nil).Once()
		f.reviews.On("ExistsFor", ctx, "buyer-1", "p-1").Return(true, nil).Once()

		_, err := f.svc.Create(ctx, buyer, ReviewInput{ProductID: "p-1", Title: "Again", Content: "second opinion here", Stars: 3})

		requireDomainError(t, err, http.StatusForbidden, MsgAlreadyReviewed)
		f.reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("concurrent insert", func(t *testing.T) {
		f := newReviewFixture(t)
		f.products.On("GetByID", ctx, "p-1").Return(reviewedProduct, nil).Once()
		f.reviews.On("ExistsFor", ctx, "buyer-1", "p-1").Return(false, nil).Once()
		f.reviews.On("Create", ctx, mock.Anything).Return(repository.ErrConflict).Once()

		_, err := f.svc.Create(ctx, buyer, ReviewInput{ProductID: "p-1", Title: "Race", Content: "submitted twice quickly", Stars: 2})

		requireDomainError(t, err, http.StatusForbidden, MsgAlreadyReviewed)
		assert.Empty(t, f.dispatcher.published())
	})
}

func TestReviewService_ListByProduct(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture(t)
	f.products.On("GetByID", ctx, "p-1").Return(reviewedProduct, nil).Once()
	f.reviews.On("ListByProduct", ctx, "p-1", 20, 0).Return([]domain.Review{{ID: "r-1"}, {ID: "r-2"}}, nil).Once()

	reviews, err := f.svc.ListByProduct(ctx, "p-1", 20, 0)

	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}

func TestReviewService_UpdateOwnerOnly(t *testing.T) {
	ctx := context.Background()

	t.Run("owner", func(t *testing.T) {
		f := newReviewFixture(t)
		existing := &domain.Review{ID: "r-1", OwnerID: "buyer-1", Title: "Ok", Stars: 3}
		f.reviews.On("GetOwned", ctx, "r-1", "buyer-1").Return(existing, nil).Once()
		f.reviews.On("Update", ctx, existing).Return(nil).Once()

		stars := 4
		review, err := f.svc.Update(ctx, buyer, "r-1", ReviewPatch{Stars: &stars})

		require.NoError(t, err)
		assert.Equal(t, 4, review.Stars)
		assert.Equal(t, "Ok", review.Title)
	})

	t.Run("someone else", func(t *testing.T) {
		f := newReviewFixture(t)
		f.reviews.On("GetOwned", ctx, "r-1", "owner-1").Return(nil, repository.ErrNotFound).Once()

		title := "hijacked"
		_, err := f.svc.Update(ctx, owner, "r-1", ReviewPatch{Title: &title})

		requireDomainError(t, err, http.StatusForbidden, MsgNotReviewOwner)
	})
}

func TestReviewService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newReviewFixture(t)
	f.reviews.On("GetOwned", ctx, "r-1", "buyer-1").Return(&domain.Review{ID: "r-1", OwnerID: "buyer-1"}, nil).Once()
	f.reviews.On("Delete", ctx, "r-1").Return(nil).Once()

	require.NoError(t, f.svc.Delete(ctx, buyer, "r-1"))
}
