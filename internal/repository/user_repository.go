package repository

import (
	"context"
	"errors"

	"github.com/placement-portal/api/internal/domain"
)

// ErrDuplicateEmail is returned when the users.email unique constraint fires.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository defines persistence access for portal accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type userRepository struct {
	db DBTX
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(db DBTX) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (name, email, password_hash, role, branch, graduation_year)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.Branch,
		user.GraduationYear,
	).Scan(&user.ID, &user.CreatedAt)
	if isUniqueViolation(err, "users_email_key") {
		return ErrDuplicateEmail
	}
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	const query = `
        SELECT id, name, email, password_hash, role, branch, graduation_year, created_at
        FROM users WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

// GetByEmail matches the stored email exactly; no case folding.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
        SELECT id, name, email, password_hash, role, branch, graduation_year, created_at
        FROM users WHERE email=$1`
	return r.fetchSingle(ctx, query, email)
}

func (r *userRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	if err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.Branch,
		&user.GraduationYear,
		&user.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}
