package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/placement-portal/api/internal/domain"
)

// ErrJobNotFound is returned when an application references a missing job.
var ErrJobNotFound = errors.New("job not found")

// ApplicationRepository persists one application per (student, job).
type ApplicationRepository interface {
	Upsert(ctx context.Context, app *domain.Application) error
	ListByStudent(ctx context.Context, userID int64) ([]domain.StudentApplication, error)
	ListByJob(ctx context.Context, jobID int64) ([]domain.JobApplicant, error)
}

type applicationRepository struct {
	db DBTX
}

// NewApplicationRepository returns a Postgres-backed implementation.
func NewApplicationRepository(db DBTX) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Upsert inserts the application or, when the pair already exists, replaces
// resume_url and cover_letter only. status and applied_at keep their first
// values. The single statement lets Postgres serialize concurrent calls for
// the same pair.
func (r *applicationRepository) Upsert(ctx context.Context, app *domain.Application) error {
	const query = `
        INSERT INTO applications (user_id, job_id, resume_url, cover_letter)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (user_id, job_id)
        DO UPDATE SET resume_url = EXCLUDED.resume_url,
                      cover_letter = EXCLUDED.cover_letter
        RETURNING id, user_id, job_id, resume_url, cover_letter, status, applied_at`

	err := r.db.QueryRow(ctx, query,
		app.UserID,
		app.JobID,
		app.ResumeURL,
		app.CoverLetter,
	).Scan(
		&app.ID,
		&app.UserID,
		&app.JobID,
		&app.ResumeURL,
		&app.CoverLetter,
		&app.Status,
		&app.AppliedAt,
	)
	if isForeignKeyViolation(err, "applications_job_id_fkey") {
		return ErrJobNotFound
	}
	return err
}

func (r *applicationRepository) ListByStudent(ctx context.Context, userID int64) ([]domain.StudentApplication, error) {
	const query = `
        SELECT a.id, a.user_id, a.job_id, a.resume_url, a.cover_letter, a.status, a.applied_at,
               j.title, j.company, j.location
        FROM applications a
        JOIN jobs j ON a.job_id = j.id
        WHERE a.user_id = $1
        ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.StudentApplication, 0)
	for rows.Next() {
		var item domain.StudentApplication
		if err := scanApplication(rows, &item.Application,
			&item.Title,
			&item.Company,
			&item.Location,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID int64) ([]domain.JobApplicant, error) {
	const query = `
        SELECT a.id, a.user_id, a.job_id, a.resume_url, a.cover_letter, a.status, a.applied_at,
               u.name, u.email, u.branch, u.graduation_year
        FROM applications a
        JOIN users u ON a.user_id = u.id
        WHERE a.job_id = $1
        ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.JobApplicant, 0)
	for rows.Next() {
		var item domain.JobApplicant
		if err := scanApplication(rows, &item.Application,
			&item.StudentName,
			&item.StudentEmail,
			&item.Branch,
			&item.GraduationYear,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func scanApplication(rows pgx.Rows, app *domain.Application, extra ...any) error {
	dest := append([]any{
		&app.ID,
		&app.UserID,
		&app.JobID,
		&app.ResumeURL,
		&app.CoverLetter,
		&app.Status,
		&app.AppliedAt,
	}, extra...)
	return rows.Scan(dest...)
}
