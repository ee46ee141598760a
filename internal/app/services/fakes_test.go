package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rsharma/collegium/internal/app/models"
	"github.com/rsharma/collegium/internal/app/repositories"
	"github.com/rsharma/collegium/internal/pkg/apperrors"
)

// In-memory repository fakes. Each one implements just enough of its
// interface semantics (uniqueness, not-found sentinels, counters) for the
// service tests to exercise real control flow.

type fakeAdminRepo struct {
	admins []*models.Admin
	nextID int64
}

func (f *fakeAdminRepo) Create(_ context.Context, admin *models.Admin) error {
	for _, a := range f.admins {
		if a.Email == admin.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	f.nextID++
	admin.ID = f.nextID
	f.admins = append(f.admins, admin)
	return nil
}

func (f *fakeAdminRepo) GetByUsername(_ context.Context, username string) (*models.Admin, error) {
	for _, a := range f.admins {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, apperrors.ErrAccountNotFound
}

func (f *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*models.Admin, error) {
	for _, a := range f.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, apperrors.ErrAccountNotFound
}

func (f *fakeAdminRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, a := range f.admins {
		if a.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAdminRepo) CountByDepartment(_ context.Context, department *string) (int, error) {
	count := 0
	for _, a := range f.admins {
		switch {
		case department == nil && a.Department == nil:
			count++
		case department != nil && a.Department != nil && *a.Department == *department:
			count++
		}
	}
	return count, nil
}

func (f *fakeAdminRepo) List(_ context.Context, department string) ([]*models.Admin, error) {
	return f.admins, nil
}

func (f *fakeAdminRepo) UpdateProfile(_ context.Context, email string, upd repositories.AdminProfileUpdate) (*models.Admin, error) {
	admin, err := f.GetByEmail(context.Background(), email)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		admin.Name = *upd.Name
	}
	return admin, nil
}

func (f *fakeAdminRepo) UpdatePassword(_ context.Context, email, passwordHash string) error {
	admin, err := f.GetByEmail(context.Background(), email)
	if err != nil {
		return err
	}
	admin.Password = passwordHash
	admin.PasswordUpdated = true
	return nil
}

func (f *fakeAdminRepo) DeleteByIDs(_ context.Context, ids []int64) error {
	keep := f.admins[:0]
	for _, a := range f.admins {
		remove := false
		for _, id := range ids {
			if a.ID == id {
				remove = true
			}
		}
		if !remove {
			keep = append(keep, a)
		}
	}
	f.admins = keep
	return nil
}

type fakeFacultyRepo struct {
	faculty []*models.Faculty
	nextID  int64
}

func (f *fakeFacultyRepo) Create(_ context.Context, faculty *models.Faculty) error {
	for _, m := range f.faculty {
		if m.Email == faculty.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	f.nextID++
	faculty.ID = f.nextID
	f.faculty = append(f.faculty, faculty)
	return nil
}

func (f *fakeFacultyRepo) GetByUsername(_ context.Context, username string) (*models.Faculty, error) {
	for _, m := range f.faculty {
		if m.Username == username {
			return m, nil
		}
	}
	return nil, apperrors.ErrAccountNotFound
}

func (f *fakeFacultyRepo) GetByEmail(_ context.Context, email string) (*models.Faculty, error) {
	for _, m := range f.faculty {
		if m.Email == email {
			return m, nil
		}
	}
	return nil, apperrors.ErrAccountNotFound
}

func (f *fakeFacultyRepo) EmailExists(_ context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(context.Background(), email)
	return err == nil, nil
}

func (f *fakeFacultyRepo) CountByDepartment(_ context.Context, department string) (int, error) {
	count := 0
	for _, m := range f.faculty {
		if m.Department == department {
			count++
		}
	}
	return count, nil
}

func (f *fakeFacultyRepo) List(_ context.Context, department string) ([]*models.Faculty, error) {
	return f.faculty, nil
}

func (f *fakeFacultyRepo) UpdateProfile(_ context.Context, email string, upd repositories.FacultyProfileUpdate) (*models.Faculty, error) {
	return f.GetByEmail(context.Background(), email)
}

func (f *fakeFacultyRepo) UpdatePassword(_ context.Context, email, passwordHash string) error {
	faculty, err := f.GetByEmail(context.Background(), email)
	if err != nil {
		return err
	}
	faculty.Password = passwordHash
	faculty.PasswordUpdated = true
	return nil
}

func (f *fakeFacultyRepo) DeleteByIDs(_ context.Context, ids []int64) error {
	return nil
}

type fakeStudentRepo struct {
	students []*models.Student
	nextID   int64
}

func (f *fakeStudentRepo) CreateWithSubjects(_ context.Context, student *models.Student) error {
	for _, s := range f.students {
		if s.Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	f.nextID++
	student.ID = f.nextID
	f.students = append(f.students, student)
	return nil
}

func (f *fakeStudentRepo) GetByID(_ context.Context, id int64) (*models.Student, error) {
	for _, s := range f.students {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, apperrors.ErrAccountNotFound
}

func (f *fakeStudentRepo) GetByUsername(_ context.Context, username string) (*models.Student, error) {
	for _, s := range f.students {
		if s.Username == username {
			return s, nil
		}
	}
	return nil, apperrors.ErrAccountNotFound
}

func (f *fakeStudentRepo) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, s := range f.students {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, apperrors.ErrAccountNotFound
}

func (f *fakeStudentRepo) EmailExists(_ context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(context.Background(), email)
	return err == nil, nil
}

func (f *fakeStudentRepo) CountByDepartment(_ context.Context, department string) (int, error) {
	count := 0
	for _, s := range f.students {
		if s.Department == department {
			count++
		}
	}
	return count, nil
}

func (f *fakeStudentRepo) List(_ context.Context, department string, year int, section string) ([]*models.Student, error) {
	var out []*models.Student
	for _, s := range f.students {
		if s.Department == department && s.Year == year && (section == "" || s.Section == section) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStudentRepo) ListAll(_ context.Context) ([]*models.Student, error) {
	return f.students, nil
}

func (f *fakeStudentRepo) UpdateProfile(_ context.Context, email string, upd repositories.StudentProfileUpdate) (*models.Student, error) {
	return f.GetByEmail(context.Background(), email)
}

func (f *fakeStudentRepo) UpdatePassword(_ context.Context, email, passwordHash string) error {
	student, err := f.GetByEmail(context.Background(), email)
	if err != nil {
		return err
	}
	student.Password = passwordHash
	student.PasswordUpdated = true
	return nil
}

func (f *fakeStudentRepo) DeleteByIDs(_ context.Context, ids []int64) error {
	return nil
}

type fakeDepartmentRepo struct {
	departments []*models.Department
	nextID      int64
}

func (f *fakeDepartmentRepo) Create(_ context.Context, department *models.Department) error {
	for _, d := range f.departments {
		if d.Name == department.Name {
			return apperrors.ErrDepartmentAlreadyExists
		}
	}
	f.nextID++
	department.ID = f.nextID
	f.departments = append(f.departments, department)
	return nil
}

func (f *fakeDepartmentRepo) GetByName(_ context.Context, name string) (*models.Department, error) {
	for _, d := range f.departments {
		if d.Name == name {
			return d, nil
		}
	}
	return nil, apperrors.ErrDepartmentNotFound
}

func (f *fakeDepartmentRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	_, err := f.GetByName(context.Background(), name)
	return err == nil, nil
}

func (f *fakeDepartmentRepo) NextCode(_ context.Context) (string, error) {
	maxCode := 0
	for _, d := range f.departments {
		if code, err := strconv.Atoi(d.Code); err == nil && code > maxCode {
			maxCode = code
		}
	}
	return fmt.Sprintf("%02d", maxCode+1), nil
}

func (f *fakeDepartmentRepo) List(_ context.Context) ([]*models.Department, error) {
	return f.departments, nil
}

func (f *fakeDepartmentRepo) DeleteByName(_ context.Context, name string) error {
	keep := f.departments[:0]
	for _, d := range f.departments {
		if d.Name != name {
			keep = append(keep, d)
		}
	}
	f.departments = keep
	return nil
}

type fakeSubjectRepo struct {
	subjects []*models.Subject
	nextID   int64
}

func (f *fakeSubjectRepo) CreateWithStudents(_ context.Context, subject *models.Subject) error {
	for _, s := range f.subjects {
		if s.SubjectCode == subject.SubjectCode {
			return apperrors.ErrSubjectAlreadyExists
		}
	}
	f.nextID++
	subject.ID = f.nextID
	f.subjects = append(f.subjects, subject)
	return nil
}

func (f *fakeSubjectRepo) GetByName(_ context.Context, subjectName string) (*models.Subject, error) {
	for _, s := range f.subjects {
		if s.SubjectName == subjectName {
			return s, nil
		}
	}
	return nil, apperrors.ErrSubjectNotFound
}

func (f *fakeSubjectRepo) ExistsByCode(_ context.Context, subjectCode string) (bool, error) {
	for _, s := range f.subjects {
		if s.SubjectCode == subjectCode {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSubjectRepo) List(_ context.Context, department, year string) ([]*models.Subject, error) {
	var out []*models.Subject
	for _, s := range f.subjects {
		if s.Department == department && (year == "" || s.Year == year) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSubjectRepo) ListAll(_ context.Context) ([]*models.Subject, error) {
	return f.subjects, nil
}

func (f *fakeSubjectRepo) DeleteByIDs(_ context.Context, ids []int64) error {
	return nil
}

type fakeTestRepo struct {
	tests  []*models.Test
	nextID int64
}

func (f *fakeTestRepo) Create(_ context.Context, test *models.Test) error {
	for _, t := range f.tests {
		if t.SubjectCode == test.SubjectCode && t.Department == test.Department &&
			t.Year == test.Year && t.Section == test.Section && t.Name == test.Name {
			return apperrors.ErrTestAlreadyExists
		}
	}
	f.nextID++
	test.ID = f.nextID
	f.tests = append(f.tests, test)
	return nil
}

func (f *fakeTestRepo) GetByClassAndName(_ context.Context, department, year, section, name string) (*models.Test, error) {
	for _, t := range f.tests {
		if t.Department == department && t.Year == year && t.Section == section && t.Name == name {
			return t, nil
		}
	}
	return nil, apperrors.ErrTestNotFound
}

func (f *fakeTestRepo) ListByClass(_ context.Context, department, year, section string) ([]*models.Test, error) {
	var out []*models.Test
	for _, t := range f.tests {
		if t.Department == department && t.Year == year && t.Section == section {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeMarksRepo struct {
	marks  []*models.Marks
	nextID int64
}

func (f *fakeMarksRepo) ExistsForTest(_ context.Context, testID int64) (bool, error) {
	for _, m := range f.marks {
		if m.TestID == testID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMarksRepo) CreateBatch(_ context.Context, testID int64, records []repositories.MarkRecord) error {
	for _, m := range f.marks {
		if m.TestID == testID {
			return apperrors.ErrMarksAlreadyUploaded
		}
	}
	for _, record := range records {
		f.nextID++
		f.marks = append(f.marks, &models.Marks{
			ID:        f.nextID,
			StudentID: record.StudentID,
			TestID:    testID,
			Marks:     record.Value,
		})
	}
	return nil
}

func (f *fakeMarksRepo) GetByStudentAndTest(_ context.Context, studentID, testID int64) (*models.Marks, error) {
	for _, m := range f.marks {
		if m.StudentID == studentID && m.TestID == testID {
			return m, nil
		}
	}
	return nil, nil
}

type fakeAttendanceRepo struct {
	records  []*models.Attendance
	subjects map[int64]*models.Subject
	nextID   int64
}

func (f *fakeAttendanceRepo) find(studentID, subjectID int64) *models.Attendance {
	for _, r := range f.records {
		if r.StudentID == studentID && r.SubjectID == subjectID {
			return r
		}
	}
	return nil
}

func (f *fakeAttendanceRepo) upsert(studentID, subjectID int64) *models.Attendance {
	if r := f.find(studentID, subjectID); r != nil {
		return r
	}
	f.nextID++
	r := &models.Attendance{ID: f.nextID, StudentID: studentID, SubjectID: subjectID}
	f.records = append(f.records, r)
	return r
}

func (f *fakeAttendanceRepo) RecordLecture(_ context.Context, subjectID int64, rosterIDs, presentIDs []int64) error {
	for _, id := range rosterIDs {
		f.upsert(id, subjectID).TotalLecturesByFaculty++
	}
	for _, id := range presentIDs {
		f.upsert(id, subjectID).LectureAttended++
	}
	return nil
}

func (f *fakeAttendanceRepo) ListByStudent(_ context.Context, studentID int64) ([]*models.Attendance, error) {
	var out []*models.Attendance
	for _, r := range f.records {
		if r.StudentID == studentID {
			copied := *r
			if f.subjects != nil {
				copied.Subject = f.subjects[r.SubjectID]
			}
			if copied.Subject == nil {
				copied.Subject = &models.Subject{ID: r.SubjectID}
			}
			out = append(out, &copied)
		}
	}
	return out, nil
}
