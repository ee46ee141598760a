package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rsharma/collegium/internal/app/models"
	"github.com/rsharma/collegium/internal/app/models/dto"
	"github.com/rsharma/collegium/internal/app/services"
	"github.com/rsharma/collegium/internal/middleware"
)

// StudentController handles the student-facing operations: own results,
// attendance summary, subjects, notices, study materials and feedback.
type StudentController struct {
	authService       *services.AuthService
	accountService    *services.AccountService
	subjectService    *services.SubjectService
	marksService      *services.MarksService
	attendanceService *services.AttendanceService
	contentService    *services.ContentService
	logger            zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(
	authService *services.AuthService,
	accountService *services.AccountService,
	subjectService *services.SubjectService,
	marksService *services.MarksService,
	attendanceService *services.AttendanceService,
	contentService *services.ContentService,
	logger zerolog.Logger,
) *StudentController {
	return &StudentController{
		authService:       authService,
		accountService:    accountService,
		subjectService:    subjectService,
		marksService:      marksService,
		attendanceService: attendanceService,
		contentService:    contentService,
		logger:            logger,
	}
}

// Login authenticates a student and issues a bearer token
func (c *StudentController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	result, err := c.authService.Login(ctx.Request.Context(), models.RoleStudent, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(result))
}

// UpdatePassword changes the calling student's password
func (c *StudentController) UpdatePassword(ctx *gin.Context) {
	var req dto.UpdatePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.authService.UpdatePassword(ctx.Request.Context(), models.RoleStudent, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Password updated successfully", nil))
}

// UpdateProfile applies a partial update to a student profile
func (c *StudentController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	student, err := c.accountService.UpdateStudent(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Student updated successfully", student))
}

// TestResults returns the calling student's marks joined with test metadata
func (c *StudentController) TestResults(ctx *gin.Context) {
	rows, err := c.marksService.TestResults(ctx.Request.Context(), middleware.AccountID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(rows))
}

// Attendance returns the calling student's per-subject attendance summary
func (c *StudentController) Attendance(ctx *gin.Context) {
	rows, err := c.attendanceService.GetAttendance(ctx.Request.Context(), middleware.AccountID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(rows))
}

// GetSubjects lists the subjects taught for the calling student's class
func (c *StudentController) GetSubjects(ctx *gin.Context) {
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
func (c *StudentController) GetNotices(ctx *gin.Context) {
	notices, err := c.contentService.GetNotices(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(notices))
}

// GetStudyMaterials lists documents shared with the calling student's class
func (c *StudentController) GetStudyMaterials(ctx *gin.Context) {
	student, err := c.accountService.GetStudentByID(ctx.Request.Context(), middleware.AccountID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	materials, err := c.contentService.GetStudyMaterials(ctx.Request.Context(), student.Department, student.Year, student.Section)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(materials))
}

// SubmitFeedback records the calling student's feedback about a subject
func (c *StudentController) SubmitFeedback(ctx *gin.Context) {
	var req dto.SubmitFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	feedback, err := c.contentService.SubmitFeedback(ctx.Request.Context(), middleware.AccountID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Feedback submitted successfully", feedback))
}
