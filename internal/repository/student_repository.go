package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/placement-portal/api/internal/domain"
)

// StudentRepository serves the TPO's read-only student directory and stats.
type StudentRepository interface {
	ListStudents(ctx context.Context) ([]domain.StudentSummary, error)
	Overview(ctx context.Context) (*domain.Overview, error)
}

type studentRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewStudentRepository instantiates repository.
func NewStudentRepository(db DBTX) StudentRepository {
	return &studentRepository{db: db, sb: psql}
}

func (r *studentRepository) ListStudents(ctx context.Context) ([]domain.StudentSummary, error) {
	query, args, err := r.sb.Select("id", "name", "email", "branch", "graduation_year", "created_at").
		From("users").
		Where(squirrel.Eq{"role": domain.RoleStudent}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.StudentSummary, 0)
	for rows.Next() {
		var s domain.StudentSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Branch, &s.GraduationYear, &s.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

// Overview counts users per role and jobs and applications per status.
func (r *studentRepository) Overview(ctx context.Context) (*domain.Overview, error) {
	users, err := r.groupCount(ctx, "users", "role")
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	jobs, err := r.groupCount(ctx, "jobs", "status")
	if err != nil {
		return nil, fmt.Errorf("count jobs: %w", err)
	}
	apps, err := r.groupCount(ctx, "applications", "status")
	if err != nil {
		return nil, fmt.Errorf("count applications: %w", err)
	}

	overview := &domain.Overview{
		Users:        make([]domain.RoleCount, 0, len(users)),
		Jobs:         make([]domain.StatusCount, 0, len(jobs)),
		Applications: make([]domain.StatusCount, 0, len(apps)),
	}
	for _, g := range users {
		overview.Users = append(overview.Users, domain.RoleCount{Role: g.key, Count: g.count})
	}
	for _, g := range jobs {
		overview.Jobs = append(overview.Jobs, domain.StatusCount{Status: g.key, Count: g.count})
	}
	for _, g := range apps {
		overview.Applications = append(overview.Applications, domain.StatusCount{Status: g.key, Count: g.count})
	}
	return overview, nil
}

type groupRow struct {
	key   string
	count int
}

func (r *studentRepository) groupCount(ctx context.Context, table, column string) ([]groupRow, error) {
	query, args, err := r.sb.Select(column, "COUNT(*)::int AS count").
		From(table).
		GroupBy(column).
		OrderBy(column).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []groupRow
	for rows.Next() {
		var g groupRow
		if err := rows.Scan(&g.key, &g.count); err != nil {
			return nil, err
		}
		result = append(result, g)
	}
	return result, rows.Err()
}
