package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rsharma/collegium/internal/app/models/dto"
	"github.com/rsharma/collegium/internal/app/repositories"
	"github.com/rsharma/collegium/internal/pkg/apperrors"
)

// AttendanceService records lecture events and computes per-subject summaries
type AttendanceService struct {
	attendanceRepo repositories.AttendanceRepository
	subjectRepo    repositories.SubjectRepository
	studentRepo    repositories.StudentRepository
	logger         zerolog.Logger
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(
	attendanceRepo repositories.AttendanceRepository,
	subjectRepo repositories.SubjectRepository,
	studentRepo repositories.StudentRepository,
	logger zerolog.Logger,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		subjectRepo:    subjectRepo,
		studentRepo:    studentRepo,
		logger:         logger,
	}
}

// MarkAttendance records one lecture for a class: every student on the
// roster gets a held lecture, the selected students additionally get an
// attended one. Selected ids that are not on the roster reject the whole
// call before anything is written.
func (s *AttendanceService) MarkAttendance(ctx context.Context, req dto.MarkAttendanceRequest) error {
	subject, err := s.subjectRepo.GetByName(ctx, req.SubjectName)
	if err != nil {
		return err
	}

	roster, err := s.studentRepo.List(ctx, req.Department, req.Year, req.Section)
	if err != nil {
		return err
	}
	if len(roster) == 0 {
		return apperrors.ErrNoStudentsFound
	}

	rosterIDs := make([]int64, 0, len(roster))
	onRoster := make(map[int64]bool, len(roster))
	for _, student := range roster {
		rosterIDs = append(rosterIDs, student.ID)
		onRoster[student.ID] = true
	}

	var strays []int64
	for _, id := range req.SelectedStudents {
		if !onRoster[id] {
			strays = append(strays, id)
		}
	}
	if len(strays) > 0 {
		return apperrors.NewValidationError(fmt.Sprintf("selected students not in class roster: %v", strays))
	}

	if err := s.attendanceRepo.RecordLecture(ctx, subject.ID, rosterIDs, req.SelectedStudents); err != nil {
		return err
	}

	s.logger.Info().
		Str("subject", subject.SubjectName).
		Int("roster", len(rosterIDs)).
		Int("present", len(req.SelectedStudents)).
		Msg("Attendance marked")
	return nil
}

// GetAttendance returns a student's per-subject attendance summary with the
// attended/held ratio formatted to two decimals. A subject with no held
// lectures reports 0.00 rather than dividing by zero.
func (s *AttendanceService) GetAttendance(ctx context.Context, studentID int64) ([]dto.AttendanceRow, error) {
	records, err := s.attendanceRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.AttendanceRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, dto.AttendanceRow{
			Percentage:             formatPercentage(record.LectureAttended, record.TotalLecturesByFaculty),
			SubjectCode:            record.Subject.SubjectCode,
			SubjectName:            record.Subject.SubjectName,
			AttendedLectures:       record.LectureAttended,
			TotalLecturesByFaculty: record.TotalLecturesByFaculty,
		})
	}

	return rows, nil
}

func formatPercentage(attended, held int) string {
	if held == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(attended)/float64(held)*100)
}
