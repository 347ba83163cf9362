package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/placement-portal/api/internal/domain"
)

// JobRepository encapsulates job posting persistence.
type JobRepository interface {
	List(ctx context.Context) ([]domain.Job, error)
	GetByID(ctx context.Context, id int64) (*domain.Job, error)
	Create(ctx context.Context, job *domain.Job) error
	Update(ctx context.Context, job *domain.Job) error
	Delete(ctx context.Context, id int64) error
}

type jobRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewJobRepository instantiates repository.
func NewJobRepository(db DBTX) JobRepository {
	return &jobRepository{db: db, sb: psql}
}

var jobColumns = []string{
	"j.id", "j.title", "j.company", "j.location", "j.ctc", "j.description",
	"j.requirements", "j.last_date", "j.status", "j.created_by", "j.created_at",
}

const jobReturning = "RETURNING id, title, company, location, ctc, description, requirements, last_date, status, created_by, created_at"

func (r *jobRepository) List(ctx context.Context) ([]domain.Job, error) {
	query, args, err := r.sb.Select(jobColumns...).
		Column("u.name AS tpo_name").
		From("jobs j").
		LeftJoin("users u ON j.created_by = u.id").
		OrderBy("j.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list jobs query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.Job, 0)
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(append(jobFields(&job), &job.TPOName)...); err != nil {
			return nil, err
		}
		result = append(result, job)
	}
	return result, rows.Err()
}

func (r *jobRepository) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query, args, err := r.sb.Select(jobColumns...).
		Columns("u.name AS tpo_name", "u.email AS tpo_email").
		From("jobs j").
		LeftJoin("users u ON j.created_by = u.id").
		Where(squirrel.Eq{"j.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get job query: %w", err)
	}

	var job domain.Job
	if err := r.db.QueryRow(ctx, query, args...).Scan(append(jobFields(&job), &job.TPOName, &job.TPOEmail)...); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	query, args, err := r.sb.Insert("jobs").
		Columns("title", "company", "location", "ctc", "description", "requirements", "last_date", "status", "created_by").
		Values(job.Title, job.Company, job.Location, job.CTC, job.Description, job.Requirements, job.LastDate, job.Status, job.CreatedBy).
		Suffix(jobReturning).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create job query: %w", err)
	}
	return r.db.QueryRow(ctx, query, args...).Scan(jobFields(job)...)
}

func (r *jobRepository) Update(ctx context.Context, job *domain.Job) error {
	query, args, err := r.sb.Update("jobs").
		Set("title", job.Title).
		Set("company", job.Company).
		Set("location", job.Location).
		Set("ctc", job.CTC).
		Set("description", job.Description).
		Set("requirements", job.Requirements).
		Set("last_date", job.LastDate).
		Set("status", job.Status).
		Where(squirrel.Eq{"id": job.ID}).
		Suffix(jobReturning).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update job query: %w", err)
	}
	return r.db.QueryRow(ctx, query, args...).Scan(jobFields(job)...)
}

func (r *jobRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete("jobs").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete job query: %w", err)
	}
	cmd, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func jobFields(job *domain.Job) []any {
	return []any{
		&job.ID,
		&job.Title,
		&job.Company,
		&job.Location,
		&job.CTC,
		&job.Description,
		&job.Requirements,
		&job.LastDate,
		&job.Status,
		&job.CreatedBy,
		&job.CreatedAt,
	}
}
