package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/storefront-labs/storefront-service/internal/api/dto"
	"github.com/storefront-labs/storefront-service/internal/service"
)

// ProductsHandler exposes product endpoints.
type ProductsHandler struct {
	products *service.ProductService
}

// NewProductsHandler constructs handler.
func NewProductsHandler(productService *service.ProductService) *ProductsHandler {
	return &ProductsHandler{products: productService}
}

// ListByStore godoc
// @Summary      List products of a store
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        storeId path string true "Store id"
// @Success      200  {array}   dto.ProductResponse
// @Failure      404  {object}  map[string]any
// @Router       /stores/{storeId}/products [get]
func (h *ProductsHandler) ListByStore(c *fiber.Ctx) error {
	limit, offset := page(c)
	products, err := h.products.ListByStore(c.UserContext(), c.Params("storeId"), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewProductListResponse(products))
}

// Get godoc
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        productId path string true "Product id"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  map[string]any
// @Router       /products/{productId} [get]
func (h *ProductsHandler) Get(c *fiber.Ctx) error {
	product, err := h.products.Get(c.UserContext(), c.Params("productId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewProductResponse(product))
}

// Create godoc
// @Summary      Add a product to a store
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        storeId path string true "Store id"
// @Param        product body dto.CreateProductRequest true "Product"
// @Success      201  {object}  dto.ProductResponse
// @Failure      403  {object}  map[string]any
// @Router       /stores/{storeId}/products [post]
func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.CreateProductRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	product, err := h.products.Create(c.UserContext(), actor, c.Params("storeId"), service.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Quantity:    *req.Quantity,
		MinQuantity: *req.MinQuantity,
		UnitPrice:   *req.UnitPrice,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewProductResponse(product))
}

// Update godoc
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        productId path string true "Product id"
// @Param        product body dto.UpdateProductRequest true "Changed fields"
// @Success      200  {object}  dto.ProductResponse
// @Failure      403  {object}  map[string]any
// @Router       /products/{productId} [patch]
func (h *ProductsHandler) Update(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.UpdateProductRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	product, err := h.products.Update(c.UserContext(), actor, c.Params("productId"), service.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
		UnitPrice:   req.UnitPrice,
		Active:      req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewProductResponse(product))
}

// Delete godoc
// @Summary      Delete a product
// @Tags         products
// @Security     BearerAuth
// @Param        productId path string true "Product id"
// @Success      204
// @Failure      403  {object}  map[string]any
// @Router       /products/{productId} [delete]
func (h *ProductsHandler) Delete(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.products.Delete(c.UserContext(), actor, c.Params("productId")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
