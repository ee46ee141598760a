package models

// Department represents an academic department. The two-digit code is
// assigned at creation time and participates in generated usernames, so it is
// never recycled after a deletion.
type Department struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"department" db:"name"`
	Code string `json:"departmentCode" db:"code"`
}
