package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/placement-portal/api/internal/api/validation"
	"github.com/placement-portal/api/internal/auth"
	"github.com/placement-portal/api/internal/domain"
	apperrors "github.com/placement-portal/api/pkg/util"
)

func bindAndValidate(c *fiber.Ctx, req any, missingMessage string) error {
	if err := c.BodyParser(req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	return validation.Struct(req, missingMessage)
}

func principalFrom(c *fiber.Ctx) (*domain.Principal, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return nil, apperrors.NewUnauthorized("No token provided")
	}
	return principal, nil
}

func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid " + name)
	}
	return id, nil
}
