package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/storefront-labs/storefront-service/internal/api/dto"
	"github.com/storefront-labs/storefront-service/internal/domain"
	"github.com/storefront-labs/storefront-service/internal/service"
)

// OrdersHandler exposes order endpoints.
type OrdersHandler struct {
	orders *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orderService *service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orderService}
}

// Create godoc
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        order body dto.CreateOrderRequest true "Order"
// @Success      201  {object}  dto.OrderResponse
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /orders [post]
func (h *OrdersHandler) Create(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.CreateOrderRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	order, err := h.orders.Create(c.UserContext(), actor, dto.ToItems(req.Items))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewOrderResponse(order))
}

// List godoc
// @Summary      List all orders (admin only)
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query int false "Page size"
// @Param        offset query int false "Page offset"
// @Success      200  {array}   dto.OrderResponse
// @Failure      403  {object}  map[string]any
// @Router       /orders [get]
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	limit, offset := page(c)
	orders, err := h.orders.List(c.UserContext(), actor, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewOrderListResponse(orders))
}

// ListMine godoc
// @Summary      List the caller's orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.OrderResponse
// @Router       /orders/mine [get]
func (h *OrdersHandler) ListMine(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	limit, offset := page(c)
	orders, err := h.orders.ListMine(c.UserContext(), actor, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewOrderListResponse(orders))
}

// Get godoc
// @Summary      Get one of the caller's orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        orderId path string true "Order id"
// @Success      200  {object}  dto.OrderResponse
// @Failure      403  {object}  map[string]any
// @Router       /orders/{orderId} [get]
func (h *OrdersHandler) Get(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	order, err := h.orders.Get(c.UserContext(), actor, c.Params("orderId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewOrderResponse(order))
}

// Update godoc
// @Summary      Change the items of a pending order or complete it
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        orderId path string true "Order id"
// @Param        order body dto.UpdateOrderRequest true "Changed fields"
// @Success      200  {object}  dto.OrderResponse
// @Failure      403  {object}  map[string]any
// @Failure      409  {object}  map[string]any
// @Router       /orders/{orderId} [patch]
func (h *OrdersHandler) Update(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.UpdateOrderRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	patch := service.OrderPatch{Items: dto.ToItems(req.Items)}
	if req.Status != nil {
		status := domain.OrderStatus(*req.Status)
		patch.Status = &status
	}
	order, err := h.orders.Update(c.UserContext(), actor, c.Params("orderId"), patch)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewOrderResponse(order))
}

// Delete godoc
// @Summary      Delete one of the caller's orders
// @Tags         orders
// @Security     BearerAuth
// @Param        orderId path string true "Order id"
// @Success      204
// @Failure      403  {object}  map[string]any
// @Router       /orders/{orderId} [delete]
func (h *OrdersHandler) Delete(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.orders.Delete(c.UserContext(), actor, c.Params("orderId")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
