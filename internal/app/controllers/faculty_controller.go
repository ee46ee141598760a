package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/rsharma/collegium/internal/app/models"
	"github.com/rsharma/collegium/internal/app/models/dto"
	"github.com/rsharma/collegium/internal/app/services"
	"github.com/rsharma/collegium/internal/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// FacultyController handles the faculty-facing operations: tests, marks,
// attendance, study materials and the faculty member's own session.
type FacultyController struct {
	authService       *services.AuthService
	accountService    *services.AccountService
	testService       *services.TestService
	marksService      *services.MarksService
	attendanceService *services.AttendanceService
	contentService    *services.ContentService
	reportService     *services.ReportService
	logger            zerolog.Logger
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(
	authService *services.AuthService,
	accountService *services.AccountService,
	testService *services.TestService,
	marksService *services.MarksService,
	attendanceService *services.AttendanceService,
	contentService *services.ContentService,
	reportService *services.ReportService,
	logger zerolog.Logger,
) *FacultyController {
	return &FacultyController{
		authService:       authService,
		accountService:    accountService,
		testService:       testService,
		marksService:      marksService,
		attendanceService: attendanceService,
		contentService:    contentService,
		reportService:     reportService,
		logger:            logger,
	}
}

// Login authenticates a faculty member and issues a bearer token
func (c *FacultyController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	result, err := c.authService.Login(ctx.Request.Context(), models.RoleFaculty, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(result))
}

// UpdatePassword changes the calling faculty member's password
func (c *FacultyController) UpdatePassword(ctx *gin.Context) {
	var req dto.UpdatePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.authService.UpdatePassword(ctx.Request.Context(), models.RoleFaculty, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Password updated successfully", nil))
}

// UpdateProfile applies a partial update to a faculty profile
func (c *FacultyController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	faculty, err := c.accountService.UpdateFaculty(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Faculty updated successfully", faculty))
}

// CreateTest registers an exam for a class
func (c *FacultyController) CreateTest(ctx *gin.Context) {
	var req dto.CreateTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	test, err := c.testService.CreateTest(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Test created successfully", test))
}

// GetTests lists exams scheduled for a class
func (c *FacultyController) GetTests(ctx *gin.Context) {
	var req dto.GetTestsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	tests, err := c.testService.GetTests(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(tests))
}

// GetStudents lists students in a class
func (c *FacultyController) GetStudents(ctx *gin.Context) {
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

// UploadMarks stores the whole mark sheet for one test
func (c *FacultyController) UploadMarks(ctx *gin.Context) {
	var req dto.UploadMarksRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.marksService.UploadMarks(ctx.Request.Context(), req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Marks uploaded successfully", nil))
}

// MarkAttendance records one lecture event for a class
func (c *FacultyController) MarkAttendance(ctx *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.attendanceService.MarkAttendance(ctx.Request.Context(), req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Attendance marked successfully", nil))
}

// AddStudyMaterial shares a document with a class
func (c *FacultyController) AddStudyMaterial(ctx *gin.Context) {
	var req dto.AddStudyMaterialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	material, err := c.contentService.AddStudyMaterial(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Study material added successfully", material))
}

// GetNotices lists every published notice
func (c *FacultyController) GetNotices(ctx *gin.Context) {
	notices, err := c.contentService.GetNotices(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResultResponse(notices))
}

// CreateNotice publishes a notice
func (c *FacultyController) CreateNotice(ctx *gin.Context) {
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

// AttendanceSheet streams a class attendance workbook as xlsx
func (c *FacultyController) AttendanceSheet(ctx *gin.Context) {
	var req dto.AttendanceSheetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	file, err := c.reportService.AttendanceSheet(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.streamWorkbook(ctx, file, fmt.Sprintf("attendance-%s.xlsx", req.SubjectName))
}

// MarksSheet streams a test mark workbook as xlsx
func (c *FacultyController) MarksSheet(ctx *gin.Context) {
	var req dto.MarksSheetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	file, err := c.reportService.MarksSheet(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.streamWorkbook(ctx, file, fmt.Sprintf("marks-%s.xlsx", req.Test))
}

func (c *FacultyController) streamWorkbook(ctx *gin.Context, file *excelize.File, filename string) {
	var buf bytes.Buffer
	if _, err := file.WriteTo(&buf); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
