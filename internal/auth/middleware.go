package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/placement-portal/api/internal/domain"
	apperrors "github.com/placement-portal/api/pkg/util"
)

const principalKey = "auth_principal"

// TokenValidator resolves a bearer token into a principal.
type TokenValidator interface {
	Validate(ctx context.Context, token string) (*domain.Principal, error)
}

// AuthMiddleware validates bearer tokens and attaches principals.
type AuthMiddleware struct {
	tokens TokenValidator
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	token, err := BearerToken(c)
	if err != nil {
		return err
	}

	principal, err := m.tokens.Validate(c.UserContext(), token)
	if err != nil {
		if errors.Is(err, ErrInvalidToken) {
			return apperrors.NewUnauthorized("Invalid or expired token")
		}
		return apperrors.NewInternalError(err)
	}

	c.Locals(principalKey, principal)
	return c.Next()
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return "", apperrors.NewUnauthorized("No token provided")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", apperrors.NewUnauthorized("Invalid authorization header")
	}
	return strings.TrimSpace(parts[1]), nil
}

// PrincipalFromContext retrieves the authenticated principal.
func PrincipalFromContext(c *fiber.Ctx) (*domain.Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*domain.Principal)
	return principal, ok
}
