package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/storefront-labs/storefront-service/internal/api/dto"
	"github.com/storefront-labs/storefront-service/internal/service"
)

// ReviewsHandler exposes review endpoints.
type ReviewsHandler struct {
	reviews *service.ReviewService
}

// NewReviewsHandler constructs handler.
func NewReviewsHandler(reviewService *service.ReviewService) *ReviewsHandler {
	return &ReviewsHandler{reviews: reviewService}
}

// Create godoc
// @Summary      Review a product
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        review body dto.CreateReviewRequest true "Review"
// @Success      201  {object}  dto.ReviewResponse
// @Failure      403  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /reviews [post]
func (h *ReviewsHandler) Create(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.CreateReviewRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	review, err := h.reviews.Create(c.UserContext(), actor, service.ReviewInput{
		ProductID: req.ProductID,
		Title:     req.Title,
		Content:   req.Content,
		Stars:     *req.Stars,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewReviewResponse(review))
}

// ListByProduct godoc
// @Summary      List reviews of a product
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        productId path string true "Product id"
// @Success      200  {array}   dto.ReviewResponse
// @Failure      404  {object}  map[string]any
// @Router       /products/{productId}/reviews [get]
func (h *ReviewsHandler) ListByProduct(c *fiber.Ctx) error {
	limit, offset := page(c)
	reviews, err := h.reviews.ListByProduct(c.UserContext(), c.Params("productId"), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewReviewListResponse(reviews))
}

// Update godoc
// @Summary      Update one of the caller's reviews
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        reviewId path string true "Review id"
// @Param        review body dto.UpdateReviewRequest true "Changed fields"
// @Success      200  {object}  dto.ReviewResponse
// @Failure      403  {object}  map[string]any
// @Router       /reviews/{reviewId} [patch]
func (h *ReviewsHandler) Update(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.UpdateReviewRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	review, err := h.reviews.Update(c.UserContext(), actor, c.Params("reviewId"), service.ReviewPatch{
		Title:   req.Title,
		Content: req.Content,
		Stars:   req.Stars,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewReviewResponse(review))
}

// Delete godoc
// @Summary      Delete one of the caller's reviews
// @Tags         reviews
// @Security     BearerAuth
// @Param        reviewId path string true "Review id"
// @Success      204
// @Failure      403  {object}  map[string]any
// @Router       /reviews/{reviewId} [delete]
func (h *ReviewsHandler) Delete(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.reviews.Delete(c.UserContext(), actor, c.Params("reviewId")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
