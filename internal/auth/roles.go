package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/placement-portal/api/internal/domain"
	apperrors "github.com/placement-portal/api/pkg/util"
)

// Authorize fails with Forbidden unless the principal holds exactly the
// required role. Roles do not imply one another.
func Authorize(principal *domain.Principal, required domain.Role) error {
	if principal == nil || principal.Role != required {
		return apperrors.NewForbidden("Forbidden: insufficient role")
	}
	return nil
}

// RequireRole gates a route on an exact role match.
func RequireRole(role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("No token provided")
		}
		if err := Authorize(principal, role); err != nil {
			return err
		}
		return c.Next()
	}
}
