package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/rsharma/collegium/internal/app/models"
	"github.com/rsharma/collegium/internal/app/models/dto"
	"github.com/rsharma/collegium/internal/app/repositories"
	"github.com/rsharma/collegium/internal/pkg/apperrors"
	"github.com/rsharma/collegium/internal/pkg/auth"
)

// defaultInitialPassword seeds accounts created without a date of birth
const defaultInitialPassword = "default"

// AccountService creates, lists, updates and deletes accounts across the
// three role tables.
type AccountService struct {
	adminRepo      repositories.AdminRepository
	facultyRepo    repositories.FacultyRepository
	studentRepo    repositories.StudentRepository
	departmentRepo repositories.DepartmentRepository
	logger         zerolog.Logger
}

// NewAccountService creates a new AccountService
func NewAccountService(
	adminRepo repositories.AdminRepository,
	facultyRepo repositories.FacultyRepository,
	studentRepo repositories.StudentRepository,
	departmentRepo repositories.DepartmentRepository,
	logger zerolog.Logger,
) *AccountService {
	return &AccountService{
		adminRepo:      adminRepo,
		facultyRepo:    facultyRepo,
		studentRepo:    studentRepo,
		departmentRepo: departmentRepo,
		logger:         logger,
	}
}

// generateUsername builds the immutable login name assigned at creation.
// The sequence is the count of existing accounts of that role within the
// department, so successive accounts in one department strictly increase.
func generateUsername(role models.RoleType, year int, departmentCode string, sequence int) string {
	return fmt.Sprintf("%s%d%s%03d", role.UsernamePrefix(), year, departmentCode, sequence)
}

// initialPassword derives the first-login password from the date of birth.
// Accounts created without one share a fixed placeholder.
func initialPassword(dob string) (string, error) {
	plain := defaultInitialPassword
	if dob != "" {
		plain = auth.InitialPasswordFromDOB(dob)
	}
	return auth.HashPassword(plain)
}

// AddAdmin registers an admin account. The department is optional; when
// absent the username carries no department code and the sequence counts
// department-less admins.
func (s *AccountService) AddAdmin(ctx context.Context, req dto.AddAdminRequest) (*models.Admin, error) {
	exists, err := s.adminRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	// An empty department string means no department, same as an absent one
	adminDept := req.Department
	if adminDept != nil && *adminDept == "" {
		adminDept = nil
	}

	departmentCode := ""
	if adminDept != nil {
		department, err := s.departmentRepo.GetByName(ctx, *adminDept)
		if err != nil {
			return nil, err
		}
		departmentCode = department.Code
	}

	count, err := s.adminRepo.CountByDepartment(ctx, adminDept)
	if err != nil {
		return nil, err
	}

	dob := ""
	if req.DOB != nil {
		dob = *req.DOB
	}
	hash, err := initialPassword(dob)
	if err != nil {
		return nil, fmt.Errorf("error hashing initial password: %w", err)
	}

	admin := &models.Admin{
		Name:            req.Name,
		Email:           req.Email,
		Username:        generateUsername(models.RoleAdmin, time.Now().Year(), departmentCode, count),
		Password:        hash,
		PasswordUpdated: false,
		Department:      adminDept,
		DOB:             req.DOB,
		JoiningYear:     req.JoiningYear,
		ContactNumber:   req.ContactNumber,
		Avatar:          req.Avatar,
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("adminId", admin.ID).Str("username", admin.Username).Msg("Admin registered")
	return admin, nil
}

// AddFaculty registers a faculty account in an existing department
func (s *AccountService) AddFaculty(ctx context.Context, req dto.AddFacultyRequest) (*models.Faculty, error) {
	exists, err := s.facultyRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	department, err := s.departmentRepo.GetByName(ctx, req.Department)
	if err != nil {
		return nil, err
	}

	count, err := s.facultyRepo.CountByDepartment(ctx, req.Department)
	if err != nil {
		return nil, err
	}

	hash, err := initialPassword(req.DOB)
	if err != nil {
		return nil, fmt.Errorf("error hashing initial password: %w", err)
	}

	faculty := &models.Faculty{
		Name:            req.Name,
		Email:           req.Email,
		Username:        generateUsername(models.RoleFaculty, time.Now().Year(), department.Code, count),
		Password:        hash,
		PasswordUpdated: false,
		Department:      req.Department,
		Designation:     req.Designation,
		DOB:             req.DOB,
		JoiningYear:     req.JoiningYear,
		Gender:          req.Gender,
		ContactNumber:   req.ContactNumber,
		Avatar:          req.Avatar,
	}

	if err := s.facultyRepo.Create(ctx, faculty); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("facultyId", faculty.ID).Str("username", faculty.Username).Msg("Faculty registered")
	return faculty, nil
}

// AddStudent registers a student account and enrolls it into every subject
// already defined for its (department, year).
func (s *AccountService) AddStudent(ctx context.Context, req dto.AddStudentRequest) (*models.Student, error) {
	exists, err := s.studentRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	department, err := s.departmentRepo.GetByName(ctx, req.Department)
	if err != nil {
		return nil, err
	}

	count, err := s.studentRepo.CountByDepartment(ctx, req.Department)
	if err != nil {
		return nil, err
	}

	hash, err := initialPassword(req.DOB)
	if err != nil {
		return nil, fmt.Errorf("error hashing initial password: %w", err)
	}

	student := &models.Student{
		Name:                req.Name,
		Email:               req.Email,
		Username:            generateUsername(models.RoleStudent, time.Now().Year(), department.Code, count),
		Password:            hash,
		PasswordUpdated:     false,
		Department:          req.Department,
		Year:                req.Year,
		Section:             req.Section,
		DOB:                 req.DOB,
		Gender:              req.Gender,
		ContactNumber:       req.ContactNumber,
		Avatar:              req.Avatar,
		FatherName:          req.FatherName,
		MotherName:          req.MotherName,
		FatherContactNumber: req.FatherContactNumber,
		MotherContactNumber: req.MotherContactNumber,
		Batch:               req.Batch,
	}

	if err := s.studentRepo.CreateWithSubjects(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentId", student.ID).Str("username", student.Username).Msg("Student registered")
	return student, nil
}

// GetStudents lists students in a class; an empty match is reported as a
// lookup miss rather than an empty page.
func (s *AccountService) GetStudents(ctx context.Context, req dto.GetStudentsRequest) ([]*models.Student, error) {
	students, err := s.studentRepo.List(ctx, req.Department, req.Year, req.Section)
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, apperrors.ErrNoStudentsFound
	}
	return students, nil
}

// GetAllStudents lists every student
func (s *AccountService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.ListAll(ctx)
}

// GetStudentByID fetches one student record
func (s *AccountService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// GetFaculty lists faculty, optionally filtered by department
func (s *AccountService) GetFaculty(ctx context.Context, department string) ([]*models.Faculty, error) {
	return s.facultyRepo.List(ctx, department)
}

// GetAllFaculty lists every faculty member
func (s *AccountService) GetAllFaculty(ctx context.Context) ([]*models.Faculty, error) {
	return s.facultyRepo.List(ctx, "")
}

// GetAdmins lists admins, optionally filtered by department
func (s *AccountService) GetAdmins(ctx context.Context, department string) ([]*models.Admin, error) {
	return s.adminRepo.List(ctx, department)
}

// GetAllAdmins lists every admin
func (s *AccountService) GetAllAdmins(ctx context.Context) ([]*models.Admin, error) {
	return s.adminRepo.List(ctx, "")
}

// UpdateAdmin applies a partial profile update, addressed by email
func (s *AccountService) UpdateAdmin(ctx context.Context, req dto.UpdateAdminRequest) (*models.Admin, error) {
	return s.adminRepo.UpdateProfile(ctx, req.Email, repositories.AdminProfileUpdate{
		Name:          req.Name,
		DOB:           req.DOB,
		Department:    req.Department,
		ContactNumber: req.ContactNumber,
		Avatar:        req.Avatar,
	})
}

// UpdateFaculty applies a partial profile update, addressed by email
func (s *AccountService) UpdateFaculty(ctx context.Context, req dto.UpdateFacultyRequest) (*models.Faculty, error) {
	return s.facultyRepo.UpdateProfile(ctx, req.Email, repositories.FacultyProfileUpdate{
		Name:          req.Name,
		DOB:           req.DOB,
		Department:    req.Department,
		Designation:   req.Designation,
		ContactNumber: req.ContactNumber,
		Avatar:        req.Avatar,
	})
}

// UpdateStudent applies a partial profile update, addressed by email
func (s *AccountService) UpdateStudent(ctx context.Context, req dto.UpdateStudentRequest) (*models.Student, error) {
	return s.studentRepo.UpdateProfile(ctx, req.Email, repositories.StudentProfileUpdate{
		Name:                req.Name,
		DOB:                 req.DOB,
		Department:          req.Department,
		ContactNumber:       req.ContactNumber,
		Avatar:              req.Avatar,
		Batch:               req.Batch,
		Section:             req.Section,
		Year:                req.Year,
		FatherName:          req.FatherName,
		MotherName:          req.MotherName,
		FatherContactNumber: req.FatherContactNumber,
	})
}

// DeleteAdmins removes admin accounts by id list
func (s *AccountService) DeleteAdmins(ctx context.Context, ids []int64) error {
	return s.adminRepo.DeleteByIDs(ctx, ids)
}

// DeleteFaculty removes faculty accounts by id list
func (s *AccountService) DeleteFaculty(ctx context.Context, ids []int64) error {
	return s.facultyRepo.DeleteByIDs(ctx, ids)
}

// DeleteStudents removes student accounts by id list
func (s *AccountService) DeleteStudents(ctx context.Context, ids []int64) error {
	return s.studentRepo.DeleteByIDs(ctx, ids)
}
