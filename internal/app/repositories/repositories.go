package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles every repository behind its interface so the service
// layer receives injected stores rather than a process-wide handle.
type Repositories struct {
	Admin         AdminRepository
	Faculty       FacultyRepository
	Student       StudentRepository
	Department    DepartmentRepository
	Subject       SubjectRepository
	Test          TestRepository
	Marks         MarksRepository
	Attendance    AttendanceRepository
	Notice        NoticeRepository
	StudyMaterial StudyMaterialRepository
	Feedback      FeedbackRepository
}

// NewRepositories creates the pgx-backed repository set
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Admin:         NewAdminRepository(pool),
		Faculty:       NewFacultyRepository(pool),
		Student:       NewStudentRepository(pool),
		Department:    NewDepartmentRepository(pool),
		Subject:       NewSubjectRepository(pool),
		Test:          NewTestRepository(pool),
		Marks:         NewMarksRepository(pool),
		Attendance:    NewAttendanceRepository(pool),
		Notice:        NewNoticeRepository(pool),
		StudyMaterial: NewStudyMaterialRepository(pool),
		Feedback:      NewFeedbackRepository(pool),
	}
}
