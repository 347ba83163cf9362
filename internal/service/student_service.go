package service

import (
	"context"
	"fmt"

	"github.com/placement-portal/api/internal/domain"
	"github.com/placement-portal/api/internal/repository"
	apperrors "github.com/placement-portal/api/pkg/util"
)

// StudentService exposes the student directory and dashboard stats.
type StudentService struct {
	students repository.StudentRepository
}

// NewStudentService builds the service.
func NewStudentService(students repository.StudentRepository) *StudentService {
	return &StudentService{students: students}
}

func (s *StudentService) List(ctx context.Context) ([]domain.StudentSummary, error) {
	students, err := s.students.ListStudents(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("list students: %w", err))
	}
	return students, nil
}

func (s *StudentService) Overview(ctx context.Context) (*domain.Overview, error) {
	overview, err := s.students.Overview(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError(fmt.Errorf("stats overview: %w", err))
	}
	return overview, nil
}
