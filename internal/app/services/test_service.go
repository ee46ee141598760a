package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/rsharma/collegium/internal/app/models"
	"github.com/rsharma/collegium/internal/app/models/dto"
	"github.com/rsharma/collegium/internal/app/repositories"
	"github.com/rsharma/collegium/internal/pkg/apperrors"
)

// TestService manages exam definitions
type TestService struct {
	testRepo repositories.TestRepository
	logger   zerolog.Logger
}

// NewTestService creates a new TestService
func NewTestService(testRepo repositories.TestRepository, logger zerolog.Logger) *TestService {
	return &TestService{
		testRepo: testRepo,
		logger:   logger,
	}
}

// CreateTest registers an exam. The (subjectCode, department, year, section,
// name) tuple must be unique.
func (s *TestService) CreateTest(ctx context.Context, req dto.CreateTestRequest) (*models.Test, error) {
	test := &models.Test{
		SubjectCode: req.SubjectCode,
		Department:  req.Department,
		Year:        req.Year,
		Section:     req.Section,
		Name:        req.Test,
		TotalMarks:  req.TotalMarks,
		Date:        req.Date,
	}

	if err := s.testRepo.Create(ctx, test); err != nil {
		return nil, err
	}

	s.logger.Info().Str("test", test.Name).Str("subjectCode", test.SubjectCode).Msg("Test created")
	return test, nil
}

// GetTests lists exams scheduled for a class; an empty match is a lookup miss
func (s *TestService) GetTests(ctx context.Context, req dto.GetTestsRequest) ([]*models.Test, error) {
	tests, err := s.testRepo.ListByClass(ctx, req.Department, req.Year, req.Section)
	if err != nil {
		return nil, err
	}
	if len(tests) == 0 {
		return nil, apperrors.ErrNoTestsFound
	}
	return tests, nil
}
