package models

// StudyMaterial is a document shared by faculty with a class. The
// (title, subject, department, year, section) tuple guards duplicates.
type StudyMaterial struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	FileURL     string `json:"fileUrl" db:"file_url"`
	Subject     string `json:"subject" db:"subject"`
	Department  string `json:"department" db:"department"`
	Year        int    `json:"year" db:"year"`
	Section     string `json:"section" db:"section"`
}
