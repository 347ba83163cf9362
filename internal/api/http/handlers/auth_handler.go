package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/placement-portal/api/internal/api/dto"
	"github.com/placement-portal/api/internal/auth"
	"github.com/placement-portal/api/internal/domain"
	"github.com/placement-portal/api/internal/service"
)

// AuthHandler exposes registration, login and profile endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := bindAndValidate(c, &req, "Missing required fields"); err != nil {
		return err
	}

	res, err := h.auth.Register(c.UserContext(), service.RegisterInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Role:           domain.Role(req.Role),
		Branch:         req.Branch,
		GraduationYear: req.GraduationYear.Int(),
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.AuthResponse{Token: res.Token, ExpiresAt: res.ExpiresAt, User: res.User})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := bindAndValidate(c, &req, "Missing fields"); err != nil {
		return err
	}

	res, err := h.auth.Login(c.UserContext(), req.Email, req.Password, domain.Role(req.Role))
	if err != nil {
		return err
	}

	return c.JSON(dto.AuthResponse{Token: res.Token, ExpiresAt: res.ExpiresAt, User: res.User})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	user, err := h.auth.Me(c.UserContext(), principal)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token, err := auth.BearerToken(c)
	if err != nil {
		return err
	}
	if err := h.auth.Logout(c.UserContext(), token); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
