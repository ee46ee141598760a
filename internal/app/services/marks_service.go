package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/rsharma/collegium/internal/app/models/dto"
	"github.com/rsharma/collegium/internal/app/repositories"
	"github.com/rsharma/collegium/internal/pkg/apperrors"
)

// MarksService manages the write-once marks ledger
type MarksService struct {
	marksRepo   repositories.MarksRepository
	testRepo    repositories.TestRepository
	studentRepo repositories.StudentRepository
	logger      zerolog.Logger
}

// NewMarksService creates a new MarksService
func NewMarksService(
	marksRepo repositories.MarksRepository,
	testRepo repositories.TestRepository,
	studentRepo repositories.StudentRepository,
	logger zerolog.Logger,
) *MarksService {
	return &MarksService{
		marksRepo:   marksRepo,
		testRepo:    testRepo,
		studentRepo: studentRepo,
		logger:      logger,
	}
}

// UploadMarks stores the whole mark sheet for one test. If any rows already
// exist for the test the batch is rejected wholesale and the existing rows
// stay untouched. A batch naming the same student twice is rejected before
// any write.
func (s *MarksService) UploadMarks(ctx context.Context, req dto.UploadMarksRequest) error {
	test, err := s.testRepo.GetByClassAndName(ctx, req.Department, req.Year, req.Section, req.Test)
	if err != nil {
		return err
	}

	// Cheap pre-check; CreateBatch re-checks inside its transaction so
	// concurrent uploads cannot both pass.
	exists, err := s.marksRepo.ExistsForTest(ctx, test.ID)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.ErrMarksAlreadyUploaded
	}

	seen := make(map[int64]bool, len(req.Marks))
	records := make([]repositories.MarkRecord, 0, len(req.Marks))
	for _, entry := range req.Marks {
		if seen[entry.StudentID] {
			return apperrors.NewValidationError(fmt.Sprintf("duplicate student %d in marks batch", entry.StudentID))
		}
		seen[entry.StudentID] = true
		records = append(records, repositories.MarkRecord{StudentID: entry.StudentID, Value: entry.Value})
	}

	if err := s.marksRepo.CreateBatch(ctx, test.ID, records); err != nil {
		return err
	}

	s.logger.Info().Str("test", test.Name).Int("rows", len(records)).Msg("Marks uploaded")
	return nil
}

// TestResults joins a student's marks against the tests scheduled for the
// student's class. Tests without an uploaded mark are omitted.
func (s *MarksService) TestResults(ctx context.Context, studentID int64) ([]dto.TestResultRow, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	tests, err := s.testRepo.ListByClass(ctx, student.Department, strconv.Itoa(student.Year), student.Section)
	if err != nil {
		return nil, err
	}

	var rows []dto.TestResultRow
	for _, test := range tests {
		mark, err := s.marksRepo.GetByStudentAndTest(ctx, studentID, test.ID)
		if err != nil {
			return nil, err
		}
		if mark == nil {
			continue
		}
		rows = append(rows, dto.TestResultRow{
			Marks:       mark.Marks,
			TotalMarks:  test.TotalMarks,
			SubjectCode: test.SubjectCode,
			TestName:    test.Name,
		})
	}

	return rows, nil
}
