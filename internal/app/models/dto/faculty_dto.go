package dto

// CreateTestRequest creates a test; the composite identity
// (subjectCode, department, year, section, test) must be unique.
type CreateTestRequest struct {
	SubjectCode string `json:"subjectCode" binding:"required"`
	Department  string `json:"department" binding:"required"`
	Year        string `json:"year" binding:"required"`
	Section     string `json:"section" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Test        string `json:"test" binding:"required"`
	TotalMarks  int    `json:"totalMarks" binding:"min=0"`
}

// GetTestsRequest lists tests for a class
type GetTestsRequest struct {
	Department string `json:"department" binding:"required"`
	Year       string `json:"year" binding:"required"`
	Section    string `json:"section" binding:"required"`
}

// MarkEntry is one student's mark inside an upload batch
type MarkEntry struct {
	StudentID int64 `json:"studentId" binding:"required"`
	Value     int   `json:"value"`
}

// UploadMarksRequest uploads the whole mark sheet for one test. The batch is
// rejected wholesale if any marks already exist for the test.
type UploadMarksRequest struct {
	Department string      `json:"department" binding:"required"`
	Year       string      `json:"year" binding:"required"`
	Section    string      `json:"section" binding:"required"`
	Test       string      `json:"test" binding:"required"`
	Marks      []MarkEntry `json:"marks" binding:"required,min=1,dive"`
}

// MarkAttendanceRequest records one lecture event for a class: every roster
// student's held counter advances, only the selected students' attended
// counter does.
type MarkAttendanceRequest struct {
	SelectedStudents []int64 `json:"selectedStudents" binding:"required,min=1"`
	SubjectName      string  `json:"subjectName" binding:"required"`
	Department       string  `json:"department" binding:"required"`
	Year             int     `json:"year" binding:"required,min=1"`
	Section          string  `json:"section" binding:"required"`
}

// AddStudyMaterialRequest shares a document with a class
type AddStudyMaterialRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	FileURL     string `json:"fileUrl" binding:"required,url"`
	Subject     string `json:"subject" binding:"required"`
	Department  string `json:"department" binding:"required"`
	Year        int    `json:"year" binding:"required,min=1"`
	Section     string `json:"section" binding:"required"`
}

// UpdateFacultyRequest updates a faculty profile, addressed by email
type UpdateFacultyRequest struct {
	Email         string  `json:"email" binding:"required,email"`
	Name          *string `json:"name,omitempty"`
	DOB           *string `json:"dob,omitempty"`
	Department    *string `json:"department,omitempty"`
	Designation   *string `json:"designation,omitempty"`
	ContactNumber *string `json:"contactNumber,omitempty"`
	Avatar        *string `json:"avatar,omitempty"`
}

// AttendanceSheetRequest selects the class whose attendance sheet to export
type AttendanceSheetRequest struct {
	SubjectName string `json:"subjectName" binding:"required"`
	Department  string `json:"department" binding:"required"`
	Year        int    `json:"year" binding:"required,min=1"`
	Section     string `json:"section" binding:"required"`
}

// MarksSheetRequest selects the test whose mark sheet to export
type MarksSheetRequest struct {
	Department string `json:"department" binding:"required"`
	Year       string `json:"year" binding:"required"`
	Section    string `json:"section" binding:"required"`
	Test       string `json:"test" binding:"required"`
}
