package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/placement-portal/api/internal/service"
)

// StudentsHandler exposes the TPO student directory and stats.
type StudentsHandler struct {
	students *service.StudentService
}

// NewStudentsHandler constructs handler.
func NewStudentsHandler(students *service.StudentService) *StudentsHandler {
	return &StudentsHandler{students: students}
}

// List handles GET /api/students.
func (h *StudentsHandler) List(c *fiber.Ctx) error {
	students, err := h.students.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(students)
}

// Overview handles GET /api/students/stats/overview.
func (h *StudentsHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.students.Overview(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(overview)
}
