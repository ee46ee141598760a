package dto

// TestResultRow is one joined marks/test line in a student's results view
type TestResultRow struct {
	Marks       int    `json:"marks"`
	TotalMarks  int    `json:"totalMarks"`
	SubjectCode string `json:"subjectCode"`
	TestName    string `json:"testName"`
}

// AttendanceRow is one subject's attendance summary for a student. The
// percentage is the attended/held ratio formatted to two decimals; a subject
// with zero held lectures reports "0.00".
type AttendanceRow struct {
	Percentage             string `json:"percentage"`
	SubjectCode            string `json:"subjectCode"`
	SubjectName            string `json:"subjectName"`
	AttendedLectures       int    `json:"attendedLectures"`
	TotalLecturesByFaculty int    `json:"totalLecturesByFaculty"`
}

// UpdateStudentRequest updates a student profile, addressed by email
type UpdateStudentRequest struct {
	Email               string  `json:"email" binding:"required,email"`
	Name                *string `json:"name,omitempty"`
	DOB                 *string `json:"dob,omitempty"`
	Department          *string `json:"department,omitempty"`
	ContactNumber       *string `json:"contactNumber,omitempty"`
	Avatar              *string `json:"avatar,omitempty"`
	Batch               *string `json:"batch,omitempty"`
	Section             *string `json:"section,omitempty"`
	Year                *int    `json:"year,omitempty"`
	FatherName          *string `json:"fatherName,omitempty"`
	MotherName          *string `json:"motherName,omitempty"`
	FatherContactNumber *string `json:"fatherContactNumber,omitempty"`
}

// SubmitFeedbackRequest is a student's feedback about a subject
type SubmitFeedbackRequest struct {
	Subject string `json:"subject" binding:"required"`
	Content string `json:"content" binding:"required"`
}
