package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/storefront-labs/storefront-service/internal/api/dto"
	"github.com/storefront-labs/storefront-service/internal/auth"
	"github.com/storefront-labs/storefront-service/internal/domain"
	apperrors "github.com/storefront-labs/storefront-service/pkg/util"
)

// parseBody decodes and validates the JSON body into req.
func parseBody(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		return apperrors.NewValidationError("Invalid request body", nil)
	}
	return dto.Validate(req)
}

func currentUser(c *fiber.Ctx) (*domain.User, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return nil, apperrors.NewUnauthorized(auth.MsgUnauthorized)
	}
	return principal.User, nil
}

func page(c *fiber.Ctx) (limit, offset int) {
	return c.QueryInt("limit", 50), c.QueryInt("offset", 0)
}
