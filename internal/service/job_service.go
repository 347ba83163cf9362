package service

import (
	"context"
	"fmt"
	"time"

	"github.com/placement-portal/api/internal/domain"
	"github.com/placement-portal/api/internal/events"
	"github.com/placement-portal/api/internal/repository"
	apperrors "github.com/placement-portal/api/pkg/util"
)

// JobInput holds editable job fields.
type JobInput struct {
	Title        string
	Company      string
	Location     string
	CTC          *string
	Description  *string
	Requirements *string
	LastDate     *time.Time
	Status       domain.JobStatus
}

// JobService is the job directory consulted by students and managed by the TPO.
type JobService struct {
	jobs   repository.JobRepository
	events events.Dispatcher
}

// NewJobService builds the service.
func NewJobService(jobs repository.JobRepository, dispatcher events.Dispatcher) *JobService {
	if dispatcher == nil {
		dispatcher = events.NewInMemoryDispatcher(nil)
	}
	return &JobService{jobs: jobs, events: dispatcher}
}

// List returns all jobs, newest first.
func (s *JobService) List(ctx context.Context) ([]domain.Job, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("list jobs: %w", err))
	}
	return jobs, nil
}

// Get returns one job with its publisher's name and email.
func (s *JobService) Get(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapLookupErr("get job", err)
	}
	return job, nil
}

// Create publishes a job on behalf of the TPO principal.
func (s *JobService) Create(ctx context.Context, principal *domain.Principal, in JobInput) (*domain.Job, error) {
	if in.Title == "" || in.Company == "" || in.Location == "" {
		return nil, ErrMissingJobFields
	}
	createdBy := principal.UserID
	job := &domain.Job{CreatedBy: &createdBy}
	applyJobInput(job, in)

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("create job: %w", err))
	}

	_ = s.events.Publish(ctx, events.New(events.EventJobCreated,
		events.Actor{UserID: principal.UserID, Role: principal.Role},
		events.JobPayload{JobID: job.ID, Title: job.Title, Company: job.Company}))
	return job, nil
}

// Update replaces every editable field. A missing status reopens the job.
func (s *JobService) Update(ctx context.Context, id int64, in JobInput) (*domain.Job, error) {
	if in.Title == "" || in.Company == "" || in.Location == "" {
		return nil, ErrMissingJobFields
	}
	job := &domain.Job{ID: id}
	applyJobInput(job, in)

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, s.mapLookupErr("update job", err)
	}
	return job, nil
}

// Delete removes the job and, by cascade, its applications.
func (s *JobService) Delete(ctx context.Context, principal *domain.Principal, id int64) error {
	if err := s.jobs.Delete(ctx, id); err != nil {
		return s.mapLookupErr("delete job", err)
	}
	_ = s.events.Publish(ctx, events.New(events.EventJobDeleted,
		events.Actor{UserID: principal.UserID, Role: principal.Role},
		events.JobPayload{JobID: id}))
	return nil
}

func (s *JobService) mapLookupErr(op string, err error) error {
	if repository.IsNotFound(err) {
		return ErrJobNotFound
	}
	return apperrors.NewInternalError(fmt.Errorf("%s: %w", op, err))
}

func applyJobInput(job *domain.Job, in JobInput) {
	job.Title = in.Title
	job.Company = in.Company
	job.Location = in.Location
	job.CTC = nonEmpty(in.CTC)
	job.Description = nonEmpty(in.Description)
	job.Requirements = nonEmpty(in.Requirements)
	job.LastDate = in.LastDate
	job.Status = in.Status
	if job.Status == "" {
		job.Status = domain.JobStatusOpen
	}
}
