package dto

// AddAdminRequest creates an admin account. Department is optional for
// admins; when present it must name an existing department.
type AddAdminRequest struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Department    *string `json:"department,omitempty"`
	DOB           *string `json:"dob,omitempty"`
	JoiningYear   *string `json:"joiningYear,omitempty"`
	ContactNumber *string `json:"contactNumber,omitempty"`
	Avatar        *string `json:"avatar,omitempty"`
}

// AddFacultyRequest creates a faculty account
type AddFacultyRequest struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Department    string  `json:"department" binding:"required"`
	Designation   string  `json:"designation" binding:"required"`
	DOB           string  `json:"dob" binding:"required"`
	JoiningYear   int     `json:"joiningYear" binding:"required,min=1900"`
	Gender        *string `json:"gender,omitempty"`
	ContactNumber *string `json:"contactNumber,omitempty"`
	Avatar        *string `json:"avatar,omitempty"`
}

// AddStudentRequest creates a student account
type AddStudentRequest struct {
	Name                string  `json:"name" binding:"required"`
	Email               string  `json:"email" binding:"required,email"`
	Department          string  `json:"department" binding:"required"`
	Year                int     `json:"year" binding:"required,min=1"`
	Section             string  `json:"section" binding:"required"`
	DOB                 string  `json:"dob" binding:"required"`
	Gender              *string `json:"gender,omitempty"`
	ContactNumber       *string `json:"contactNumber,omitempty"`
	Avatar              *string `json:"avatar,omitempty"`
	FatherName          *string `json:"fatherName,omitempty"`
	MotherName          *string `json:"motherName,omitempty"`
	FatherContactNumber *string `json:"fatherContactNumber,omitempty"`
	MotherContactNumber *string `json:"motherContactNumber,omitempty"`
	Batch               *string `json:"batch,omitempty"`
}

// AddDepartmentRequest creates a department; the code is assigned server-side
type AddDepartmentRequest struct {
	Department string `json:"department" binding:"required"`
}

// AddSubjectRequest creates a subject and links it to matching students
type AddSubjectRequest struct {
	SubjectName   string `json:"subjectName" binding:"required"`
	SubjectCode   string `json:"subjectCode" binding:"required"`
	Department    string `json:"department" binding:"required"`
	Year          string `json:"year" binding:"required"`
	TotalLectures int    `json:"totalLectures" binding:"min=0"`
}

// GetStudentsRequest filters students by class selectors; section optional
type GetStudentsRequest struct {
	Department string `json:"department" binding:"required"`
	Year       int    `json:"year" binding:"required,min=1"`
	Section    string `json:"section,omitempty"`
}

// GetByDepartmentRequest filters accounts or subjects by department
type GetByDepartmentRequest struct {
	Department string `json:"department" binding:"required"`
	Year       string `json:"year,omitempty"`
}

// DeleteIDsRequest is the bulk-delete payload: a list of account ids
type DeleteIDsRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1"`
}

// DeleteDepartmentRequest deletes a department by name
type DeleteDepartmentRequest struct {
	Department string `json:"department" binding:"required"`
}

// CreateNoticeRequest publishes a notice
type CreateNoticeRequest struct {
	From      string `json:"from" binding:"required"`
	Topic     string `json:"topic" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Date      string `json:"date" binding:"required"`
	NoticeFor string `json:"noticeFor" binding:"required"`
}

// UpdateAdminRequest updates an admin profile, addressed by email
type UpdateAdminRequest struct {
	Email         string  `json:"email" binding:"required,email"`
	Name          *string `json:"name,omitempty"`
	DOB           *string `json:"dob,omitempty"`
	Department    *string `json:"department,omitempty"`
	ContactNumber *string `json:"contactNumber,omitempty"`
	Avatar        *string `json:"avatar,omitempty"`
}
