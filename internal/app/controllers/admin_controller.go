// Package controllers handles HTTP request handling
package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rsharma/collegium/internal/app/models"
	"github.com/rsharma/collegium/internal/app/models/dto"
	"github.com/rsharma/collegium/internal/app/services"
	"github.com/rsharma/collegium/internal/middleware"
)

// AdminController handles the admin-facing operations: account provisioning,
// departments, subjects, notices and the admin's own session.
type AdminController struct {
	authService       *services.AuthService
	accountService    *services.AccountService
	departmentService *services.DepartmentService
	subjectService    *services.SubjectService
	contentService    *services.ContentService
	logger            zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(
	authService *services.AuthService,
	accountService *services.AccountService,
	departmentService *services.DepartmentService,
	subjectService *services.SubjectService,
	contentService *services.ContentService,
	logger zerolog.Logger,
) *AdminController {
	return &AdminController{
		authService:       authService,
		accountService:    accountService,
		departmentService: departmentService,
		subjectService:    subjectService,
		contentService:    contentService,
		logger:            logger,
	}
}

// Login authenticates an admin and issues a bearer token
func (c *AdminController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	result, err := c.authService.Login(ctx.Request.Context(), models.RoleAdmin, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(result))
}

// UpdatePassword changes the calling admin's password
func (c *AdminController) UpdatePassword(ctx *gin.Context) {
	var req dto.UpdatePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.authService.UpdatePassword(ctx.Request.Context(), models.RoleAdmin, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Password updated successfully", nil))
}

// AddAdmin registers a new admin account
func (c *AdminController) AddAdmin(ctx *gin.Context) {
	var req dto.AddAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	admin, err := c.accountService.AddAdmin(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Admin registered successfully", admin))
}

// AddFaculty registers a new faculty account
func (c *AdminController) AddFaculty(ctx *gin.Context) {
	var req dto.AddFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	faculty, err := c.accountService.AddFaculty(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Faculty registered successfully", faculty))
}

// AddStudent registers a new student account
func (c *AdminController) AddStudent(ctx *gin.Context) {
	var req dto.AddStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	student, err := c.accountService.AddStudent(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Student registered successfully", student))
}

// AddDepartment creates a department with a server-assigned code
func (c *AdminController) AddDepartment(ctx *gin.Context) {
	var req dto.AddDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	department, err := c.departmentService.AddDepartment(ctx.Request.Context(), req.Department)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Department added successfully", department))
}

// AddSubject creates a subject and enrolls matching students
func (c *AdminController) AddSubject(ctx *gin.Context) {
	var req dto.AddSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	subject, err := c.subjectService.AddSubject(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Subject added successfully", subject))
}

// GetAdmins lists admins, optionally filtered by department
func (c *AdminController) GetAdmins(ctx *gin.Context) {
	var req dto.GetByDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	admins, err := c.accountService.GetAdmins(ctx.Request.Context(), req.Department)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(admins))
}

// GetFaculty lists faculty by department
func (c *AdminController) GetFaculty(ctx *gin.Context) {
	var req dto.GetByDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	faculty, err := c.accountService.GetFaculty(ctx.Request.Context(), req.Department)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(faculty))
}

// GetStudents lists students in a class
func (c *AdminController) GetStudents(ctx *gin.Context) {
	var req dto.GetStudentsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	students, err := c.accountService.GetStudents(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(students))
}

// GetAllAdmins lists every admin across departments
func (c *AdminController) GetAllAdmins(ctx *gin.Context) {
	admins, err := c.accountService.GetAllAdmins(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(admins))
}

// GetAllFaculty lists every faculty member across departments
func (c *AdminController) GetAllFaculty(ctx *gin.Context) {
	faculty, err := c.accountService.GetAllFaculty(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(faculty))
}

// GetAllStudents lists every student across classes
func (c *AdminController) GetAllStudents(ctx *gin.Context) {
	students, err := c.accountService.GetAllStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(students))
}

// GetAllSubjects lists every subject across departments
func (c *AdminController) GetAllSubjects(ctx *gin.Context) {
	subjects, err := c.subjectService.GetAllSubjects(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(subjects))
}

// GetDepartments lists every department
func (c *AdminController) GetDepartments(ctx *gin.Context) {
	departments, err := c.departmentService.GetDepartments(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(departments))
}

// GetSubjects lists subjects for a department, optionally narrowed by year
func (c *AdminController) GetSubjects(ctx *gin.Context) {
	var req dto.GetByDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	subjects, err := c.subjectService.GetSubjects(ctx.Request.Context(), req.Department, req.Year)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(subjects))
}

// GetNotices lists every published notice
func (c *AdminController) GetNotices(ctx *gin.Context) {
	notices, err := c.contentService.GetNotices(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(notices))
}

// CreateNotice publishes a notice
func (c *AdminController) CreateNotice(ctx *gin.Context) {
	var req dto.CreateNoticeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	notice, err := c.contentService.CreateNotice(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Notice created successfully", notice))
}

// UpdateProfile applies a partial update to an admin profile
func (c *AdminController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	admin, err := c.accountService.UpdateAdmin(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Admin updated successfully", admin))
}

// DeleteAdmins removes admin accounts by id list
func (c *AdminController) DeleteAdmins(ctx *gin.Context) {
	c.deleteByIDs(ctx, c.accountService.DeleteAdmins, "Admins deleted successfully")
}

// DeleteFaculty removes faculty accounts by id list
func (c *AdminController) DeleteFaculty(ctx *gin.Context) {
	c.deleteByIDs(ctx, c.accountService.DeleteFaculty, "Faculty deleted successfully")
}

// DeleteStudents removes student accounts by id list
func (c *AdminController) DeleteStudents(ctx *gin.Context) {
	c.deleteByIDs(ctx, c.accountService.DeleteStudents, "Students deleted successfully")
}

// DeleteSubjects removes subjects by id list
func (c *AdminController) DeleteSubjects(ctx *gin.Context) {
	c.deleteByIDs(ctx, c.subjectService.DeleteSubjects, "Subjects deleted successfully")
}

// DeleteDepartment removes a department by name
func (c *AdminController) DeleteDepartment(ctx *gin.Context) {
	var req dto.DeleteDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.departmentService.DeleteDepartment(ctx.Request.Context(), req.Department); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Department deleted successfully", nil))
}

func (c *AdminController) deleteByIDs(ctx *gin.Context, deleteFn func(context.Context, []int64) error, message string) {
	var req dto.DeleteIDsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := deleteFn(ctx.Request.Context(), req.IDs); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(message, nil))
}
