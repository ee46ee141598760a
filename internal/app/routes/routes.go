package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/rsharma/collegium/internal/app/controllers"
	"github.com/rsharma/collegium/internal/app/models"
	"github.com/rsharma/collegium/internal/middleware"
)

// SetupRouter configures all application routes. Login endpoints are public
// behind the stricter login throttle; everything else requires a bearer
// token for the matching role.
func SetupRouter(
	router *gin.Engine,
	adminController *controllers.AdminController,
	facultyController *controllers.FacultyController,
	studentController *controllers.StudentController,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
) {
	router.Use(middleware.SecurityHeaders())

	api := router.Group("/api")

	admin := api.Group("/admin")
	{
		admin.POST("/login", rateLimiter.LoginLimit(), adminController.Login)

		adminProtected := admin.Group("")
		adminProtected.Use(rateLimiter.APILimit(), authMiddleware.RequireAuth(), authMiddleware.RoleRequired(models.RoleAdmin))
		{
			adminProtected.POST("/updatepassword", adminController.UpdatePassword)
			adminProtected.POST("/updateprofile", adminController.UpdateProfile)

			adminProtected.POST("/addadmin", adminController.AddAdmin)
			adminProtected.POST("/addfaculty", adminController.AddFaculty)
			adminProtected.POST("/addstudent", adminController.AddStudent)
			adminProtected.POST("/adddepartment", adminController.AddDepartment)
			adminProtected.POST("/addsubject", adminController.AddSubject)

			adminProtected.POST("/getadmin", adminController.GetAdmins)
			adminProtected.POST("/getfaculty", adminController.GetFaculty)
			adminProtected.POST("/getstudent", adminController.GetStudents)
			adminProtected.GET("/getalladmin", adminController.GetAllAdmins)
			adminProtected.GET("/getallfaculty", adminController.GetAllFaculty)
			adminProtected.GET("/getallstudent", adminController.GetAllStudents)
			adminProtected.GET("/getallsubject", adminController.GetAllSubjects)
			adminProtected.GET("/getdepartment", adminController.GetDepartments)
			adminProtected.POST("/getsubject", adminController.GetSubjects)
			adminProtected.GET("/getnotice", adminController.GetNotices)
			adminProtected.POST("/createnotice", adminController.CreateNotice)

			adminProtected.POST("/deleteadmin", adminController.DeleteAdmins)
			adminProtected.POST("/deletefaculty", adminController.DeleteFaculty)
			adminProtected.POST("/deletestudent", adminController.DeleteStudents)
			adminProtected.POST("/deletesubject", adminController.DeleteSubjects)
			adminProtected.POST("/deletedepartment", adminController.DeleteDepartment)
		}
	}

	faculty := api.Group("/faculty")
	{
		faculty.POST("/login", rateLimiter.LoginLimit(), facultyController.Login)

		facultyProtected := faculty.Group("")
		facultyProtected.Use(rateLimiter.APILimit(), authMiddleware.RequireAuth(), authMiddleware.RoleRequired(models.RoleFaculty))
		{
			facultyProtected.POST("/updatepassword", facultyController.UpdatePassword)
			facultyProtected.POST("/updateprofile", facultyController.UpdateProfile)

			facultyProtected.POST("/createtest", facultyController.CreateTest)
			facultyProtected.POST("/gettest", facultyController.GetTests)
			facultyProtected.POST("/getstudent", facultyController.GetStudents)
			facultyProtected.POST("/uploadmarks", facultyController.UploadMarks)
			facultyProtected.POST("/markattendance", facultyController.MarkAttendance)
			facultyProtected.POST("/addstudymaterial", facultyController.AddStudyMaterial)
			facultyProtected.GET("/getnotice", facultyController.GetNotices)
			facultyProtected.POST("/createnotice", facultyController.CreateNotice)

			facultyProtected.POST("/attendancesheet", facultyController.AttendanceSheet)
			facultyProtected.POST("/markssheet", facultyController.MarksSheet)
		}
	}

	student := api.Group("/student")
	{
		student.POST("/login", rateLimiter.LoginLimit(), studentController.Login)

		studentProtected := student.Group("")
		studentProtected.Use(rateLimiter.APILimit(), authMiddleware.RequireAuth(), authMiddleware.RoleRequired(models.RoleStudent))
		{
			studentProtected.POST("/updatepassword", studentController.UpdatePassword)
			studentProtected.POST("/updateprofile", studentController.UpdateProfile)

			studentProtected.GET("/testresult", studentController.TestResults)
			studentProtected.GET("/attendance", studentController.Attendance)
			studentProtected.POST("/getsubject", studentController.GetSubjects)
			studentProtected.GET("/getnotice", studentController.GetNotices)
			studentProtected.GET("/getstudymaterial", studentController.GetStudyMaterials)
			studentProtected.POST("/feedback", studentController.SubmitFeedback)
		}
	}
}
