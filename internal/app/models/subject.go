package models

// Subject represents a taught subject. On creation it is linked to every
// existing student matching its (department, year).
type Subject struct {
	ID            int64  `json:"id" db:"id"`
	SubjectCode   string `json:"subjectCode" db:"subject_code"`
	SubjectName   string `json:"subjectName" db:"subject_name"`
	Department    string `json:"department" db:"department"`
	Year          string `json:"year" db:"year"`
	TotalLectures int    `json:"totalLectures" db:"total_lectures"`
}
