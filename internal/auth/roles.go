package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/storefront-labs/storefront-service/internal/domain"
	apperrors "github.com/storefront-labs/storefront-service/pkg/util"
)

// RequireAuthenticated rejects requests that reached a handler without a
// principal, e.g. on a route that was mistakenly allow-listed.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized(MsgUnauthorized)
		}
		return c.Next()
	}
}

// RequireRole ensures the principal has one of the allowed roles.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized(MsgUnauthorized)
		}
		if _, exists := allowedSet[principal.User.Role]; !exists {
			return apperrors.NewForbidden(MsgForbiddenRole)
		}
		return c.Next()
	}
}
