package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/rsharma/collegium/internal/app/models"
	"github.com/rsharma/collegium/internal/app/models/dto"
	"github.com/rsharma/collegium/internal/pkg/apperrors"
	"github.com/rsharma/collegium/internal/pkg/auth"
)

func newAccountService(departments ...*models.Department) (*AccountService, *fakeStudentRepo) {
	departmentRepo := &fakeDepartmentRepo{departments: departments}
	studentRepo := &fakeStudentRepo{}
	return NewAccountService(&fakeAdminRepo{}, &fakeFacultyRepo{}, studentRepo, departmentRepo, zerolog.Nop()), studentRepo
}

func TestAddStudentUsernameFormat(t *testing.T) {
	svc, _ := newAccountService(&models.Department{ID: 1, Name: "CSE", Code: "01"})

	student, err := svc.AddStudent(context.Background(), dto.AddStudentRequest{
		Name:       "Asha Verma",
		Email:      "asha@example.com",
		Department: "CSE",
		Year:       2,
		Section:    "A",
		DOB:        "2003-08-21",
	})
	if err != nil {
		t.Fatalf("AddStudent: %v", err)
	}

	want := fmt.Sprintf("STU%d01000", time.Now().Year())
	if student.Username != want {
		t.Errorf("username = %q, want %q", student.Username, want)
	}
	if student.PasswordUpdated {
		t.Error("new account must start with passwordUpdated=false")
	}
}

func TestAddStudentSequenceIncreases(t *testing.T) {
	svc, _ := newAccountService(&models.Department{ID: 1, Name: "CSE", Code: "01"})

	var usernames []string
	for i := 0; i < 3; i++ {
		student, err := svc.AddStudent(context.Background(), dto.AddStudentRequest{
			Name:       fmt.Sprintf("Student %d", i),
			Email:      fmt.Sprintf("s%d@example.com", i),
			Department: "CSE",
			Year:       1,
			Section:    "A",
			DOB:        "2004-01-15",
		})
		if err != nil {
			t.Fatalf("AddStudent %d: %v", i, err)
		}
		usernames = append(usernames, student.Username)
	}

	year := time.Now().Year()
	for i, username := range usernames {
		want := fmt.Sprintf("STU%d01%03d", year, i)
		if username != want {
			t.Errorf("username[%d] = %q, want %q", i, username, want)
		}
	}
}

func TestAddStudentInitialPasswordFromDOB(t *testing.T) {
	svc, repo := newAccountService(&models.Department{ID: 1, Name: "CSE", Code: "01"})

	_, err := svc.AddStudent(context.Background(), dto.AddStudentRequest{
		Name:       "Asha Verma",
		Email:      "asha@example.com",
		Department: "CSE",
		Year:       2,
		Section:    "A",
		DOB:        "2003-08-21",
	})
	if err != nil {
		t.Fatalf("AddStudent: %v", err)
	}

	stored := repo.students[0]
	if !auth.CheckPassword(stored.Password, "21-08-2003") {
		t.Error("initial password must be the reversed date of birth")
	}
	if auth.CheckPassword(stored.Password, "2003-08-21") {
		t.Error("unreversed date of birth must not match")
	}
}

func TestAddStudentDuplicateEmail(t *testing.T) {
	svc, _ := newAccountService(&models.Department{ID: 1, Name: "CSE", Code: "01"})

	req := dto.AddStudentRequest{
		Name: "Asha", Email: "asha@example.com", Department: "CSE",
		Year: 1, Section: "A", DOB: "2004-01-15",
	}
	if _, err := svc.AddStudent(context.Background(), req); err != nil {
		t.Fatalf("first AddStudent: %v", err)
	}

	_, err := svc.AddStudent(context.Background(), req)
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Errorf("err = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestAddStudentUnknownDepartment(t *testing.T) {
	svc, _ := newAccountService()

	_, err := svc.AddStudent(context.Background(), dto.AddStudentRequest{
		Name: "Asha", Email: "asha@example.com", Department: "Nope",
		Year: 1, Section: "A", DOB: "2004-01-15",
	})
	if !errors.Is(err, apperrors.ErrDepartmentNotFound) {
		t.Errorf("err = %v, want ErrDepartmentNotFound", err)
	}
}

func TestAddAdminWithoutDepartment(t *testing.T) {
	svc, _ := newAccountService()

	admin, err := svc.AddAdmin(context.Background(), dto.AddAdminRequest{
		Name:  "Root Admin",
		Email: "root@example.com",
	})
	if err != nil {
		t.Fatalf("AddAdmin: %v", err)
	}

	// No department means no code segment in the username
	want := fmt.Sprintf("ADM%d000", time.Now().Year())
	if admin.Username != want {
		t.Errorf("username = %q, want %q", admin.Username, want)
	}
}

func TestAddFacultySequenceIsPerDepartment(t *testing.T) {
	departmentRepo := &fakeDepartmentRepo{departments: []*models.Department{
		{ID: 1, Name: "CSE", Code: "01"},
		{ID: 2, Name: "ECE", Code: "02"},
	}}
	svc := NewAccountService(&fakeAdminRepo{}, &fakeFacultyRepo{}, &fakeStudentRepo{}, departmentRepo, zerolog.Nop())

	first, err := svc.AddFaculty(context.Background(), dto.AddFacultyRequest{
		Name: "A", Email: "a@example.com", Department: "CSE",
		Designation: "Professor", DOB: "1980-02-11", JoiningYear: 2010,
	})
	if err != nil {
		t.Fatalf("AddFaculty: %v", err)
	}
	second, err := svc.AddFaculty(context.Background(), dto.AddFacultyRequest{
		Name: "B", Email: "b@example.com", Department: "ECE",
		Designation: "Professor", DOB: "1985-07-02", JoiningYear: 2012,
	})
	if err != nil {
		t.Fatalf("AddFaculty: %v", err)
	}

	year := time.Now().Year()
	if want := fmt.Sprintf("FAC%d01000", year); first.Username != want {
		t.Errorf("first username = %q, want %q", first.Username, want)
	}
	// A different department restarts the sequence at zero
	if want := fmt.Sprintf("FAC%d02000", year); second.Username != want {
		t.Errorf("second username = %q, want %q", second.Username, want)
	}
}

func TestGetStudentsEmptyClassIsNotFound(t *testing.T) {
	svc, _ := newAccountService(&models.Department{ID: 1, Name: "CSE", Code: "01"})

	_, err := svc.GetStudents(context.Background(), dto.GetStudentsRequest{
		Department: "CSE", Year: 3, Section: "B",
	})
	if !errors.Is(err, apperrors.ErrNoStudentsFound) {
		t.Errorf("err = %v, want ErrNoStudentsFound", err)
	}
}

func TestAddAdminEmptyDepartmentSameAsNone(t *testing.T) {
	svc, _ := newAccountService(&models.Department{ID: 1, Name: "CSE", Code: "01"})

	first, err := svc.AddAdmin(context.Background(), dto.AddAdminRequest{
		Name:  "Root Admin",
		Email: "root@example.com",
	})
	if err != nil {
		t.Fatalf("AddAdmin: %v", err)
	}

	// An empty department string counts in the same bucket as an absent one
	empty := ""
	second, err := svc.AddAdmin(context.Background(), dto.AddAdminRequest{
		Name:       "Second Admin",
		Email:      "second@example.com",
		Department: &empty,
	})
	if err != nil {
		t.Fatalf("AddAdmin with empty department: %v", err)
	}

	year := time.Now().Year()
	if want := fmt.Sprintf("ADM%d000", year); first.Username != want {
		t.Errorf("first username = %q, want %q", first.Username, want)
	}
	if want := fmt.Sprintf("ADM%d001", year); second.Username != want {
		t.Errorf("second username = %q, want %q", second.Username, want)
	}
	if second.Department != nil {
		t.Errorf("second.Department = %q, want nil", *second.Department)
	}
}

func TestGetAllStudentsSpansClasses(t *testing.T) {
	svc, _ := newAccountService(
		&models.Department{ID: 1, Name: "CSE", Code: "01"},
		&models.Department{ID: 2, Name: "ECE", Code: "02"},
	)

	requests := []dto.AddStudentRequest{
		{Name: "A", Email: "a@example.com", Department: "CSE", Year: 1, Section: "A", DOB: "2004-01-15"},
		{Name: "B", Email: "b@example.com", Department: "CSE", Year: 2, Section: "B", DOB: "2003-06-02"},
		{Name: "C", Email: "c@example.com", Department: "ECE", Year: 1, Section: "A", DOB: "2004-11-30"},
	}
	for _, req := range requests {
		if _, err := svc.AddStudent(context.Background(), req); err != nil {
			t.Fatalf("AddStudent(%s): %v", req.Email, err)
		}
	}

	students, err := svc.GetAllStudents(context.Background())
	if err != nil {
		t.Fatalf("GetAllStudents: %v", err)
	}
	if len(students) != len(requests) {
		t.Errorf("len(students) = %d, want %d", len(students), len(requests))
	}
}

func TestGetAllFacultySpansDepartments(t *testing.T) {
	svc, _ := newAccountService(
		&models.Department{ID: 1, Name: "CSE", Code: "01"},
		&models.Department{ID: 2, Name: "ECE", Code: "02"},
	)

	requests := []dto.AddFacultyRequest{
		{Name: "A", Email: "a@example.com", Department: "CSE", Designation: "Professor", DOB: "1980-02-11", JoiningYear: 2010},
		{Name: "B", Email: "b@example.com", Department: "ECE", Designation: "Lecturer", DOB: "1985-07-23", JoiningYear: 2015},
	}
	for _, req := range requests {
		if _, err := svc.AddFaculty(context.Background(), req); err != nil {
			t.Fatalf("AddFaculty(%s): %v", req.Email, err)
		}
	}

	faculty, err := svc.GetAllFaculty(context.Background())
	if err != nil {
		t.Fatalf("GetAllFaculty: %v", err)
	}
	if len(faculty) != len(requests) {
		t.Errorf("len(faculty) = %d, want %d", len(faculty), len(requests))
	}

	admins, err := svc.GetAllAdmins(context.Background())
	if err != nil {
		t.Fatalf("GetAllAdmins: %v", err)
	}
	if len(admins) != 0 {
		t.Errorf("len(admins) = %d, want 0", len(admins))
	}
}
