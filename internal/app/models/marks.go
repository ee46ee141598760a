package models

// Marks is a single write-once mark record for a (student, test) pair.
// Rows are only created through a bulk upload that is rejected wholesale when
// any rows already exist for the test.
type Marks struct {
	ID        int64 `json:"id" db:"id"`
	StudentID int64 `json:"studentId" db:"student_id"`
	TestID    int64 `json:"examId" db:"test_id"`
	Marks     int   `json:"marks" db:"marks"`
}
