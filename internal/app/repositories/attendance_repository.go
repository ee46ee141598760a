package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rsharma/collegium/internal/app/models"
	"github.com/rsharma/collegium/internal/db"
)

// AttendanceRepository handles database operations for attendance counters
type AttendanceRepository interface {
	// RecordLecture increments lectures-held for every student on the
	// roster and lectures-attended for every present student, creating
	// counter rows on first contact. All updates happen in one
	// transaction so a crash cannot leave the counters half-applied.
	RecordLecture(ctx context.Context, subjectID int64, rosterIDs, presentIDs []int64) error
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Attendance, error)
}

type attendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a pgx-backed attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) RecordLecture(ctx context.Context, subjectID int64, rosterIDs, presentIDs []int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO attendance (student_id, subject_id, total_lectures_by_faculty, lecture_attended)
			SELECT id, $1, 1, 0 FROM students WHERE id = ANY($2)
			ON CONFLICT (student_id, subject_id)
			DO UPDATE SET total_lectures_by_faculty = attendance.total_lectures_by_faculty + 1`,
			subjectID, rosterIDs)
		if err != nil {
			return fmt.Errorf("error incrementing held lectures: %w", err)
		}

		if len(presentIDs) == 0 {
			return nil
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO attendance (student_id, subject_id, total_lectures_by_faculty, lecture_attended)
			SELECT id, $1, 0, 1 FROM students WHERE id = ANY($2)
			ON CONFLICT (student_id, subject_id)
			DO UPDATE SET lecture_attended = attendance.lecture_attended + 1`,
			subjectID, presentIDs)
		if err != nil {
			return fmt.Errorf("error incrementing attended lectures: %w", err)
		}

		return nil
	})
}

func (r *attendanceRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Attendance, error) {
	query := `
		SELECT a.id, a.student_id, a.subject_id, a.total_lectures_by_faculty, a.lecture_attended,
		       s.id, s.subject_code, s.subject_name, s.department, s.year, s.total_lectures
		FROM attendance a
		JOIN subjects s ON s.id = a.subject_id
		WHERE a.student_id = $1
		ORDER BY s.subject_name`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing attendance: %w", err)
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		var a models.Attendance
		var s models.Subject
		err := rows.Scan(
			&a.ID, &a.StudentID, &a.SubjectID, &a.TotalLecturesByFaculty, &a.LectureAttended,
			&s.ID, &s.SubjectCode, &s.SubjectName, &s.Department, &s.Year, &s.TotalLectures,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning attendance: %w", err)
		}
		a.Subject = &s
		records = append(records, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance: %w", err)
	}

	return records, nil
}
