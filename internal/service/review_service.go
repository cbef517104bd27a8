package service

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/storefront-labs/storefront-service/internal/clock"
	"github.com/storefront-labs/storefront-service/internal/domain"
	"github.com/storefront-labs/storefront-service/internal/events"
	"github.com/storefront-labs/storefront-service/internal/repository"
	apperrors "github.com/storefront-labs/storefront-service/pkg/util"
)

// Public messages for review failures.
const (
	MsgReviewedProductMissing = "This product does not exist"
	MsgAlreadyReviewed        = "You're not allowed to add two reviews for the same product"
	MsgOwnProductReview       = "You're not allowed to review your own product"
	MsgNotReviewOwner         = "Only the owner of a review is allowed to update it"
)

// ReviewService manages product reviews.
type ReviewService struct {
	reviews    repository.ReviewRepository
	products   repository.ProductRepository
	dispatcher events.Dispatcher
	clock      clock.Clock
	logger     *zap.Logger
}

// ReviewInput is the payload for adding a review.
type ReviewInput struct {
	ProductID string
	Title     string
	Content   string
	Stars     int
}

// ReviewPatch carries the fields to change; nil fields are left as is.
type ReviewPatch struct {
	Title   *string
	Content *string
	Stars   *int
}

// NewReviewService constructs the service.
func NewReviewService(deps CatalogDependencies) *ReviewService {
	deps = deps.withDefaults()
	return &ReviewService{
		reviews:    deps.ReviewRepo,
		products:   deps.ProductRepo,
		dispatcher: deps.Dispatcher,
		clock:      deps.Clock,
		logger:     deps.Logger,
	}
}

// Create adds actor's review of a product. Owners cannot review their own
// products and nobody reviews the same product twice.
func (s *ReviewService) Create(ctx context.Context, actor *domain.User, input ReviewInput) (*domain.Review, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized(MsgLoginRequired)
	}
	product, err := s.product(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product.OwnerID == actor.ID {
		return nil, apperrors.NewForbidden(MsgOwnProductReview)
	}
	exists, err := s.reviews.ExistsFor(ctx, actor.ID, product.ID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if exists {
		return nil, apperrors.NewForbidden(MsgAlreadyReviewed)
	}

	review := &domain.Review{
		ProductID: product.ID,
		OwnerID:   actor.ID,
		Title:     strings.TrimSpace(input.Title),
		Content:   input.Content,
		Stars:     input.Stars,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, apperrors.NewForbidden(MsgAlreadyReviewed)
		}
		return nil, apperrors.NewInternalError(err)
	}

	if s.dispatcher != nil {
		event := events.New(events.EventReviewAdded, actor.ID, review.ID, s.clock.Now(),
			events.ReviewAddedPayload{ProductID: product.ID, Stars: review.Stars})
		if err := s.dispatcher.Publish(ctx, event); err != nil {
			s.logger.Warn("event handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
		}
	}
	return review, nil
}

// ListByProduct returns a page of a product's reviews.
func (s *ReviewService) ListByProduct(ctx context.Context, productID string, limit, offset int) ([]domain.Review, error) {
	if _, err := s.product(ctx, productID); err != nil {
		return nil, err
	}
	reviews, err := s.reviews.ListByProduct(ctx, productID, limit, offset)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return reviews, nil
}

// Update applies patch to a review written by actor.
func (s *ReviewService) Update(ctx context.Context, actor *domain.User, id string, patch ReviewPatch) (*domain.Review, error) {
	review, err := s.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if patch.Title != nil {
		review.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Content != nil {
		review.Content = *patch.Content
	}
	if patch.Stars != nil {
		review.Stars = *patch.Stars
	}
	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return review, nil
}

// Delete removes a review written by actor.
func (s *ReviewService) Delete(ctx context.Context, actor *domain.User, id string) error {
	if _, err := s.owned(ctx, actor, id); err != nil {
		return err
	}
	if err := s.reviews.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewForbidden(MsgNotReviewOwner)
		}
		return apperrors.NewInternalError(err)
	}
	return nil
}

func (s *ReviewService) owned(ctx context.Context, actor *domain.User, id string) (*domain.Review, error) {
	if actor == nil {
		return nil, apperrors.NewForbidden(MsgNotReviewOwner)
	}
	review, err := s.reviews.GetOwned(ctx, id, actor.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewForbidden(MsgNotReviewOwner)
		}
		return nil, apperrors.NewInternalError(err)
	}
	return review, nil
}

func (s *ReviewService) product(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewDomainError(apperrors.CodeNotFound, MsgReviewedProductMissing, http.StatusNotFound,
				map[string]any{"productId": id})
		}
		return nil, apperrors.NewInternalError(err)
	}
	return product, nil
}
