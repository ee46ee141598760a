package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/rsharma/collegium/internal/app/models"
	"github.com/rsharma/collegium/internal/app/models/dto"
	"github.com/rsharma/collegium/internal/app/repositories"
	"github.com/rsharma/collegium/internal/pkg/apperrors"
)

// SubjectService manages subjects and their enrollment links
type SubjectService struct {
	subjectRepo    repositories.SubjectRepository
	departmentRepo repositories.DepartmentRepository
	logger         zerolog.Logger
}

// NewSubjectService creates a new SubjectService
func NewSubjectService(
	subjectRepo repositories.SubjectRepository,
	departmentRepo repositories.DepartmentRepository,
	logger zerolog.Logger,
) *SubjectService {
	return &SubjectService{
		subjectRepo:    subjectRepo,
		departmentRepo: departmentRepo,
		logger:         logger,
	}
}

// AddSubject creates a subject and retroactively enrolls every existing
// student of its (department, year).
func (s *SubjectService) AddSubject(ctx context.Context, req dto.AddSubjectRequest) (*models.Subject, error) {
	exists, err := s.subjectRepo.ExistsByCode(ctx, req.SubjectCode)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrSubjectAlreadyExists
	}

	if _, err := s.departmentRepo.GetByName(ctx, req.Department); err != nil {
		return nil, err
	}

	subject := &models.Subject{
		SubjectCode:   req.SubjectCode,
		SubjectName:   req.SubjectName,
		Department:    req.Department,
		Year:          req.Year,
		TotalLectures: req.TotalLectures,
	}

	if err := s.subjectRepo.CreateWithStudents(ctx, subject); err != nil {
		return nil, err
	}

	s.logger.Info().Str("subjectCode", subject.SubjectCode).Msg("Subject created")
	return subject, nil
}

// GetSubjects lists subjects for a department, optionally narrowed by year.
// An empty match is a lookup miss.
func (s *SubjectService) GetSubjects(ctx context.Context, department, year string) ([]*models.Subject, error) {
	subjects, err := s.subjectRepo.List(ctx, department, year)
	if err != nil {
		return nil, err
	}
	if len(subjects) == 0 {
		return nil, apperrors.ErrSubjectNotFound
	}
	return subjects, nil
}

// GetAllSubjects lists every subject
func (s *SubjectService) GetAllSubjects(ctx context.Context) ([]*models.Subject, error) {
	return s.subjectRepo.ListAll(ctx)
}

// DeleteSubjects removes subjects by id list
func (s *SubjectService) DeleteSubjects(ctx context.Context, ids []int64) error {
	return s.subjectRepo.DeleteByIDs(ctx, ids)
}
