package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/placement-portal/api/internal/api/dto"
	"github.com/placement-portal/api/internal/domain"
	"github.com/placement-portal/api/internal/service"
	apperrors "github.com/placement-portal/api/pkg/util"
)

// JobsHandler exposes the job directory.
type JobsHandler struct {
	jobs *service.JobService
}

// NewJobsHandler constructs handler.
func NewJobsHandler(jobs *service.JobService) *JobsHandler {
	return &JobsHandler{jobs: jobs}
}

// List handles GET /api/jobs.
func (h *JobsHandler) List(c *fiber.Ctx) error {
	jobs, err := h.jobs.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(jobs)
}

// Get handles GET /api/jobs/:id.
func (h *JobsHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	job, err := h.jobs.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(job)
}

// Create handles POST /api/jobs.
func (h *JobsHandler) Create(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	input, err := jobInput(c)
	if err != nil {
		return err
	}
	job, err := h.jobs.Create(c.UserContext(), principal, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(job)
}

// Update handles PUT /api/jobs/:id.
func (h *JobsHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	input, err := jobInput(c)
	if err != nil {
		return err
	}
	job, err := h.jobs.Update(c.UserContext(), id, input)
	if err != nil {
		return err
	}
	return c.JSON(job)
}

// Delete handles DELETE /api/jobs/:id.
func (h *JobsHandler) Delete(c *fiber.Ctx) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.jobs.Delete(c.UserContext(), principal, id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Job deleted"})
}

func jobInput(c *fiber.Ctx) (service.JobInput, error) {
	var req dto.JobRequest
	if err := bindAndValidate(c, &req, "Missing required fields"); err != nil {
		return service.JobInput{}, err
	}
	lastDate, err := req.ParseLastDate()
	if err != nil {
		return service.JobInput{}, apperrors.NewValidationError(err.Error())
	}
	return service.JobInput{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		CTC:          req.CTC,
		Description:  req.Description,
		Requirements: req.Requirements,
		LastDate:     lastDate,
		Status:       domain.JobStatus(req.Status),
	}, nil
}
