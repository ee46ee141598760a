package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/rsharma/collegium/internal/app/models"
	"github.com/rsharma/collegium/internal/app/models/dto"
	"github.com/rsharma/collegium/internal/pkg/apperrors"
)

func newAttendanceFixture() (*AttendanceService, *fakeAttendanceRepo) {
	subject := &models.Subject{ID: 10, SubjectCode: "CS201", SubjectName: "Algorithms", Department: "CSE", Year: "2"}
	subjectRepo := &fakeSubjectRepo{subjects: []*models.Subject{subject}, nextID: 10}
	studentRepo := &fakeStudentRepo{students: []*models.Student{
		{ID: 1, Name: "A", Department: "CSE", Year: 2, Section: "A"},
		{ID: 2, Name: "B", Department: "CSE", Year: 2, Section: "A"},
		{ID: 3, Name: "C", Department: "CSE", Year: 2, Section: "A"},
	}, nextID: 3}
	attendanceRepo := &fakeAttendanceRepo{subjects: map[int64]*models.Subject{10: subject}}
	svc := NewAttendanceService(attendanceRepo, subjectRepo, studentRepo, zerolog.Nop())
	return svc, attendanceRepo
}

func markReq(present ...int64) dto.MarkAttendanceRequest {
	return dto.MarkAttendanceRequest{
		SelectedStudents: present,
		SubjectName:      "Algorithms",
		Department:       "CSE",
		Year:             2,
		Section:          "A",
	}
}

func TestMarkAttendanceCounters(t *testing.T) {
	svc, repo := newAttendanceFixture()

	if err := svc.MarkAttendance(context.Background(), markReq(1, 3)); err != nil {
		t.Fatalf("MarkAttendance: %v", err)
	}

	want := map[int64][2]int{1: {1, 1}, 2: {1, 0}, 3: {1, 1}}
	for studentID, counters := range want {
		record := repo.find(studentID, 10)
		if record == nil {
			t.Fatalf("no counter row for student %d", studentID)
		}
		if record.TotalLecturesByFaculty != counters[0] || record.LectureAttended != counters[1] {
			t.Errorf("student %d: held=%d attended=%d, want held=%d attended=%d",
				studentID, record.TotalLecturesByFaculty, record.LectureAttended, counters[0], counters[1])
		}
	}
}

func TestMarkAttendanceAccumulatesAcrossLectures(t *testing.T) {
	svc, repo := newAttendanceFixture()

	if err := svc.MarkAttendance(context.Background(), markReq(1, 2)); err != nil {
		t.Fatalf("first lecture: %v", err)
	}
	if err := svc.MarkAttendance(context.Background(), markReq(1)); err != nil {
		t.Fatalf("second lecture: %v", err)
	}

	if r := repo.find(1, 10); r.TotalLecturesByFaculty != 2 || r.LectureAttended != 2 {
		t.Errorf("student 1: held=%d attended=%d, want 2/2", r.TotalLecturesByFaculty, r.LectureAttended)
	}
	if r := repo.find(2, 10); r.TotalLecturesByFaculty != 2 || r.LectureAttended != 1 {
		t.Errorf("student 2: held=%d attended=%d, want 2/1", r.TotalLecturesByFaculty, r.LectureAttended)
	}
}

func TestMarkAttendanceRejectsStrayStudents(t *testing.T) {
	svc, repo := newAttendanceFixture()

	err := svc.MarkAttendance(context.Background(), markReq(1, 99))
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want ErrValidationFailed", err)
	}
	if len(repo.records) != 0 {
		t.Error("a rejected call must not touch any counter")
	}
}

func TestMarkAttendanceUnknownSubject(t *testing.T) {
	svc, _ := newAttendanceFixture()

	req := markReq(1)
	req.SubjectName = "Basket Weaving"
	if err := svc.MarkAttendance(context.Background(), req); !errors.Is(err, apperrors.ErrSubjectNotFound) {
		t.Errorf("err = %v, want ErrSubjectNotFound", err)
	}
}

func TestGetAttendancePercentage(t *testing.T) {
	svc, repo := newAttendanceFixture()
	repo.records = []*models.Attendance{
		{ID: 1, StudentID: 1, SubjectID: 10, TotalLecturesByFaculty: 3, LectureAttended: 2},
	}

	rows, err := svc.GetAttendance(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetAttendance: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].Percentage != "66.67" {
		t.Errorf("percentage = %q, want %q", rows[0].Percentage, "66.67")
	}
	if rows[0].SubjectName != "Algorithms" {
		t.Errorf("subjectName = %q, want Algorithms", rows[0].SubjectName)
	}
}

func TestGetAttendanceZeroHeldLectures(t *testing.T) {
	svc, repo := newAttendanceFixture()
	repo.records = []*models.Attendance{
		{ID: 1, StudentID: 1, SubjectID: 10, TotalLecturesByFaculty: 0, LectureAttended: 0},
	}

	rows, err := svc.GetAttendance(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetAttendance: %v", err)
	}
	if rows[0].Percentage != "0.00" {
		t.Errorf("percentage = %q, want 0.00 when nothing was held", rows[0].Percentage)
	}
}

func TestFormatPercentage(t *testing.T) {
	cases := []struct {
		attended, held int
		want           string
	}{
		{0, 0, "0.00"},
		{1, 1, "100.00"},
		{1, 3, "33.33"},
		{3, 4, "75.00"},
	}
	for _, tc := range cases {
		if got := formatPercentage(tc.attended, tc.held); got != tc.want {
			t.Errorf("formatPercentage(%d, %d) = %q, want %q", tc.attended, tc.held, got, tc.want)
		}
	}
}
