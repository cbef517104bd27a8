package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/storefront-labs/storefront-service/internal/api/dto"
	"github.com/storefront-labs/storefront-service/internal/service"
)

// StoresHandler exposes store endpoints.
type StoresHandler struct {
	stores *service.StoreService
}

// NewStoresHandler constructs handler.
func NewStoresHandler(storeService *service.StoreService) *StoresHandler {
	return &StoresHandler{stores: storeService}
}

// List godoc
// @Summary      List stores
// @Tags         stores
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.StoreResponse
// @Router       /stores [get]
func (h *StoresHandler) List(c *fiber.Ctx) error {
	limit, offset := page(c)
	stores, err := h.stores.List(c.UserContext(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewStoreListResponse(stores))
}

// Get godoc
// @Summary      Get a store
// @Tags         stores
// @Produce      json
// @Security     BearerAuth
// @Param        storeId path string true "Store id"
// @Success      200  {object}  dto.StoreResponse
// @Failure      404  {object}  map[string]any
// @Router       /stores/{storeId} [get]
func (h *StoresHandler) Get(c *fiber.Ctx) error {
	store, err := h.stores.Get(c.UserContext(), c.Params("storeId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewStoreResponse(store))
}

// Create godoc
// @Summary      Create a store owned by the caller
// @Tags         stores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        store body dto.CreateStoreRequest true "Store"
// @Success      201  {object}  dto.StoreResponse
// @Router       /stores [post]
func (h *StoresHandler) Create(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.CreateStoreRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	store, err := h.stores.Create(c.UserContext(), actor, service.StoreInput{Name: req.Name, Description: req.Description})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewStoreResponse(store))
}

// Update godoc
// @Summary      Update a store
// @Tags         stores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        storeId path string true "Store id"
// @Param        store body dto.UpdateStoreRequest true "Changed fields"
// @Success      200  {object}  dto.StoreResponse
// @Failure      403  {object}  map[string]any
// @Router       /stores/{storeId} [patch]
func (h *StoresHandler) Update(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.UpdateStoreRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	store, err := h.stores.Update(c.UserContext(), actor, c.Params("storeId"), service.StorePatch{
		Name:        req.Name,
		Description: req.Description,
		Active:      req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewStoreResponse(store))
}

// Delete godoc
// @Summary      Delete a store and its products
// @Tags         stores
// @Security     BearerAuth
// @Param        storeId path string true "Store id"
// @Success      204
// @Failure      403  {object}  map[string]any
// @Router       /stores/{storeId} [delete]
func (h *StoresHandler) Delete(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.stores.Delete(c.UserContext(), actor, c.Params("storeId")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
