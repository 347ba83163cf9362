package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/placement-portal/api/internal/api/http/handlers"
	"github.com/placement-portal/api/internal/auth"
	"github.com/placement-portal/api/internal/domain"
	"github.com/placement-portal/api/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Applications   *handlers.ApplicationsHandler
	Jobs           *handlers.JobsHandler
	Students       *handlers.StudentsHandler
	AuthMiddleware *auth.AuthMiddleware
	Metrics        *observability.Metrics
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Root)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Metrics.Registry(), promhttp.HandlerOpts{})))
	}

	authenticated := cfg.AuthMiddleware.Handle
	tpoOnly := auth.RequireRole(domain.RoleTPO)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/me", authenticated, cfg.Auth.Me)
	authGroup.Post("/logout", authenticated, cfg.Auth.Logout)

	apps := api.Group("/applications", authenticated)
	apps.Post("/", cfg.Applications.Apply)
	apps.Get("/my", cfg.Applications.ListMine)
	apps.Get("/job/:jobId", tpoOnly, cfg.Applications.ListForJob)

	jobs := api.Group("/jobs", authenticated)
	jobs.Get("/", cfg.Jobs.List)
	jobs.Get("/:id", cfg.Jobs.Get)
	jobs.Post("/", tpoOnly, cfg.Jobs.Create)
	jobs.Put("/:id", tpoOnly, cfg.Jobs.Update)
	jobs.Delete("/:id", tpoOnly, cfg.Jobs.Delete)

	students := api.Group("/students", authenticated, tpoOnly)
	students.Get("/", cfg.Students.List)
	students.Get("/stats/overview", cfg.Students.Overview)
}
