package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/storefront-labs/storefront-service/internal/api/dto"
	"github.com/storefront-labs/storefront-service/internal/service"
)

// UsersHandler exposes account endpoints.
type UsersHandler struct {
	auth  *service.AuthService
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService, userService *service.UserService) *UsersHandler {
	return &UsersHandler{auth: authService, users: userService}
}

// Signup godoc
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user body dto.SignupRequest true "New account"
// @Success      201  {object}  dto.SignupResponse
// @Failure      400  {object}  map[string]any
// @Failure      409  {object}  map[string]any "Email already registered"
// @Router       /users/signup [post]
func (h *UsersHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	user, err := h.auth.RegisterUser(c.UserContext(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.SignupResponse{UserID: user.ID})
}

// List godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query int false "Page size"
// @Param        offset query int false "Page offset"
// @Success      200  {array}   dto.UserResponse
// @Failure      403  {object}  map[string]any
// @Router       /users [get]
func (h *UsersHandler) List(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	limit, offset := page(c)
	users, err := h.users.List(c.UserContext(), actor, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserListResponse(users))
}

// Me godoc
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UserResponse
// @Router       /users/me [get]
func (h *UsersHandler) Me(c *fiber.Ctx) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewUserResponse(actor))
}
