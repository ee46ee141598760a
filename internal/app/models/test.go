package models

// Test represents an exam. The (subjectCode, department, year, section, name)
// tuple is unique.
type Test struct {
	ID          int64  `json:"id" db:"id"`
	SubjectCode string `json:"subjectCode" db:"subject_code"`
	Department  string `json:"department" db:"department"`
	Year        string `json:"year" db:"year"`
	Section     string `json:"section" db:"section"`
	Name        string `json:"test" db:"name"`
	TotalMarks  int    `json:"totalMarks" db:"total_marks"`
	Date        string `json:"date" db:"date"`
}
