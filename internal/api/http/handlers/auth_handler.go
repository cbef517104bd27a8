package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/storefront-labs/storefront-service/internal/api/dto"
	"github.com/storefront-labs/storefront-service/internal/auth"
	"github.com/storefront-labs/storefront-service/internal/service"
	apperrors "github.com/storefront-labs/storefront-service/pkg/util"
)

// AuthHandler exposes token endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body dto.LoginRequest true "Email and password"
// @Success      200  {object}  dto.TokenPairResponse
// @Failure      400  {object}  map[string]any "Invalid credentials"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	pair, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.TokenPairResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken})
}

// Refresh godoc
// @Summary      Exchange a refresh token for a new access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.RefreshRequest true "Refresh token"
// @Success      200  {object}  dto.AccessTokenResponse
// @Failure      401  {object}  map[string]any "Refresh token expired or unverifiable"
// @Router       /auth/refreshToken [post]
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	access, err := h.auth.Refresh(c.UserContext(), req.RefreshToken)
	if err != nil {
		return err
	}
	return c.JSON(dto.AccessTokenResponse{AccessToken: access})
}

// Logout godoc
// @Summary      Invalidate the presented access token (admin only)
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.StatusResponse
// @Failure      401  {object}  map[string]any
// @Failure      403  {object}  map[string]any
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized(auth.MsgUnauthorized)
	}
	if err := h.auth.Logout(c.UserContext(), principal); err != nil {
		return err
	}
	return c.JSON(dto.StatusResponse{Status: "token_invalidated"})
}
