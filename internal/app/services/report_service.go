package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/rsharma/collegium/internal/app/models/dto"
	"github.com/rsharma/collegium/internal/app/repositories"
	"github.com/rsharma/collegium/internal/pkg/apperrors"
)

// ReportService exports class-level attendance and mark sheets as xlsx
// workbooks for faculty download.
type ReportService struct {
	attendanceRepo repositories.AttendanceRepository
	marksRepo      repositories.MarksRepository
	subjectRepo    repositories.SubjectRepository
	studentRepo    repositories.StudentRepository
	testRepo       repositories.TestRepository
	logger         zerolog.Logger
}

// NewReportService creates a new ReportService
func NewReportService(
	attendanceRepo repositories.AttendanceRepository,
	marksRepo repositories.MarksRepository,
	subjectRepo repositories.SubjectRepository,
	studentRepo repositories.StudentRepository,
	testRepo repositories.TestRepository,
	logger zerolog.Logger,
) *ReportService {
	return &ReportService{
		attendanceRepo: attendanceRepo,
		marksRepo:      marksRepo,
		subjectRepo:    subjectRepo,
		studentRepo:    studentRepo,
		testRepo:       testRepo,
		logger:         logger,
	}
}

// AttendanceSheet builds a workbook with one row per roster student holding
// the attended/held counters and the derived percentage for one subject.
func (s *ReportService) AttendanceSheet(ctx context.Context, req dto.AttendanceSheetRequest) (*excelize.File, error) {
	subject, err := s.subjectRepo.GetByName(ctx, req.SubjectName)
	if err != nil {
		return nil, err
	}

	roster, err := s.studentRepo.List(ctx, req.Department, req.Year, req.Section)
	if err != nil {
		return nil, err
	}
	if len(roster) == 0 {
		return nil, apperrors.ErrNoStudentsFound
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	if err := f.SetSheetName(sheet, "Attendance"); err != nil {
		return nil, fmt.Errorf("error naming sheet: %w", err)
	}
	sheet = "Attendance"

	headers := []string{"Username", "Name", "Attended", "Held", "Percentage"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("error writing header: %w", err)
		}
	}

	for i, student := range roster {
		attended, held := 0, 0
		records, err := s.attendanceRepo.ListByStudent(ctx, student.ID)
		if err != nil {
			return nil, err
		}
		for _, record := range records {
			if record.SubjectID == subject.ID {
				attended = record.LectureAttended
				held = record.TotalLecturesByFaculty
				break
			}
		}

		row := i + 2
		values := []interface{}{student.Username, student.Name, attended, held, formatPercentage(attended, held)}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("error writing row: %w", err)
			}
		}
	}

	s.logger.Info().Str("subject", subject.SubjectName).Int("students", len(roster)).Msg("Attendance sheet exported")
	return f, nil
}

// MarksSheet builds a workbook with one row per roster student holding the
// uploaded mark for one test. Students without a mark show an empty cell.
func (s *ReportService) MarksSheet(ctx context.Context, req dto.MarksSheetRequest) (*excelize.File, error) {
	test, err := s.testRepo.GetByClassAndName(ctx, req.Department, req.Year, req.Section, req.Test)
	if err != nil {
		return nil, err
	}

	year, err := strconv.Atoi(req.Year)
	if err != nil {
		return nil, apperrors.NewValidationError("year must be numeric")
	}

	roster, err := s.studentRepo.List(ctx, req.Department, year, req.Section)
	if err != nil {
		return nil, err
	}
	if len(roster) == 0 {
		return nil, apperrors.ErrNoStudentsFound
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	if err := f.SetSheetName(sheet, "Marks"); err != nil {
		return nil, fmt.Errorf("error naming sheet: %w", err)
	}
	sheet = "Marks"

	headers := []string{"Username", "Name", "Marks", "Total Marks"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("error writing header: %w", err)
		}
	}

	for i, student := range roster {
		mark, err := s.marksRepo.GetByStudentAndTest(ctx, student.ID, test.ID)
		if err != nil {
			return nil, err
		}

		row := i + 2
		values := []interface{}{student.Username, student.Name, nil, test.TotalMarks}
		if mark != nil {
			values[2] = mark.Marks
		}
		for col, value := range values {
			if value == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("error writing row: %w", err)
			}
		}
	}

	s.logger.Info().Str("test", test.Name).Int("students", len(roster)).Msg("Mark sheet exported")
	return f, nil
}
