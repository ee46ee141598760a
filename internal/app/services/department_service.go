package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/rsharma/collegium/internal/app/models"
	"github.com/rsharma/collegium/internal/app/repositories"
	"github.com/rsharma/collegium/internal/pkg/apperrors"
)

// DepartmentService manages academic departments and their code assignment
type DepartmentService struct {
	departmentRepo repositories.DepartmentRepository
	logger         zerolog.Logger
}

// NewDepartmentService creates a new DepartmentService
func NewDepartmentService(departmentRepo repositories.DepartmentRepository, logger zerolog.Logger) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		logger:         logger,
	}
}

// AddDepartment creates a department with the next free two-digit code.
// Codes grow monotonically from the highest ever assigned, so deleting a
// department never frees its code for reuse.
func (s *DepartmentService) AddDepartment(ctx context.Context, name string) (*models.Department, error) {
	exists, err := s.departmentRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDepartmentAlreadyExists
	}

	code, err := s.departmentRepo.NextCode(ctx)
	if err != nil {
		return nil, err
	}

	department := &models.Department{Name: name, Code: code}
	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, err
	}

	s.logger.Info().Str("department", name).Str("code", code).Msg("Department created")
	return department, nil
}

// GetDepartments lists every department
func (s *DepartmentService) GetDepartments(ctx context.Context) ([]*models.Department, error) {
	return s.departmentRepo.List(ctx)
}

// DeleteDepartment removes a department by name
func (s *DepartmentService) DeleteDepartment(ctx context.Context, name string) error {
	if _, err := s.departmentRepo.GetByName(ctx, name); err != nil {
		return err
	}
	return s.departmentRepo.DeleteByName(ctx, name)
}
