package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/placement-portal/api/internal/auth"
	"github.com/placement-portal/api/internal/domain"
	"github.com/placement-portal/api/internal/events"
	"github.com/placement-portal/api/internal/repository"
	apperrors "github.com/placement-portal/api/pkg/util"
)

// ApplyInput is a student's application to a job.
type ApplyInput struct {
	JobID       int64
	ResumeURL   *string
	CoverLetter *string
}

// ApplicationService manages the application ledger.
type ApplicationService struct {
	apps   repository.ApplicationRepository
	events events.Dispatcher
	logger *zap.Logger
}

// NewApplicationService builds the service.
func NewApplicationService(apps repository.ApplicationRepository, dispatcher events.Dispatcher, logger *zap.Logger) *ApplicationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if dispatcher == nil {
		dispatcher = events.NewInMemoryDispatcher(logger)
	}
	return &ApplicationService{apps: apps, events: dispatcher, logger: logger}
}

// Apply records the student's application, replacing resume and cover
// letter on resubmission. Status and applied_at are never touched here.
func (s *ApplicationService) Apply(ctx context.Context, principal *domain.Principal, in ApplyInput) (*domain.Application, error) {
	if err := auth.Authorize(principal, domain.RoleStudent); err != nil {
		return nil, ErrOnlyStudentsApply
	}
	if in.JobID <= 0 {
		return nil, ErrJobIDRequired
	}

	app := &domain.Application{
		UserID:      principal.UserID,
		JobID:       in.JobID,
		ResumeURL:   nonEmpty(in.ResumeURL),
		CoverLetter: nonEmpty(in.CoverLetter),
	}
	if err := s.apps.Upsert(ctx, app); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, apperrors.NewInternalError(fmt.Errorf("upsert application: %w", err))
	}

	_ = s.events.Publish(ctx, events.New(events.EventApplicationSubmitted,
		events.Actor{UserID: principal.UserID, Role: principal.Role},
		events.ApplicationSubmittedPayload{ApplicationID: app.ID, JobID: app.JobID}))

	return app, nil
}

// ListMine returns the student's applications, most recent first.
func (s *ApplicationService) ListMine(ctx context.Context, principal *domain.Principal) ([]domain.StudentApplication, error) {
	if err := auth.Authorize(principal, domain.RoleStudent); err != nil {
		return nil, ErrOnlyStudents
	}
	apps, err := s.apps.ListByStudent(ctx, principal.UserID)
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("list student applications: %w", err))
	}
	return apps, nil
}

// ListForJob returns every application to the job with applicant details.
func (s *ApplicationService) ListForJob(ctx context.Context, principal *domain.Principal, jobID int64) ([]domain.JobApplicant, error) {
	if err := auth.Authorize(principal, domain.RoleTPO); err != nil {
		return nil, ErrOnlyTPO
	}
	apps, err := s.apps.ListByJob(ctx, jobID)
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("list job applications: %w", err))
	}
	return apps, nil
}
