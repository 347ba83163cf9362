package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/placement-portal/api/internal/api/dto"
	"github.com/placement-portal/api/internal/auth"
	"github.com/placement-portal/api/internal/domain"
	"github.com/placement-portal/api/internal/service"
)

// ApplicationsHandler exposes the application ledger.
type ApplicationsHandler struct {
	apps *service.ApplicationService
}

// NewApplicationsHandler constructs handler.
func NewApplicationsHandler(apps *service.ApplicationService) *ApplicationsHandler {
	return &ApplicationsHandler{apps: apps}
}

// Apply handles POST /api/applications.
func (h *ApplicationsHandler) Apply(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	// Role first: a TPO caller gets 403 whatever the body holds.
	if err := auth.Authorize(principal, domain.RoleStudent); err != nil {
		return service.ErrOnlyStudentsApply
	}

	var req dto.ApplyRequest
	if err := bindAndValidate(c, &req, "Job ID required"); err != nil {
		return err
	}

	app, err := h.apps.Apply(c.UserContext(), principal, service.ApplyInput{
		JobID:       int64(req.JobID),
		ResumeURL:   req.ResumeURL,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(app)
}

// ListMine handles GET /api/applications/my.
func (h *ApplicationsHandler) ListMine(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	apps, err := h.apps.ListMine(c.UserContext(), principal)
	if err != nil {
		return err
	}
	return c.JSON(apps)
}

// ListForJob handles GET /api/applications/job/:jobId.
func (h *ApplicationsHandler) ListForJob(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	jobID, err := paramID(c, "jobId")
	if err != nil {
		return err
	}
	apps, err := h.apps.ListForJob(c.UserContext(), principal, jobID)
	if err != nil {
		return err
	}
	return c.JSON(apps)
}
