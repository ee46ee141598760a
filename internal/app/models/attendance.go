package models

// Attendance is the per-(student, subject) counter pair. Rows materialize
// lazily the first time a student appears in a marking call and are
// incremented thereafter.
type Attendance struct {
	ID                     int64 `json:"id" db:"id"`
	StudentID              int64 `json:"studentId" db:"student_id"`
	SubjectID              int64 `json:"subjectId" db:"subject_id"`
	TotalLecturesByFaculty int   `json:"totalLecturesByFaculty" db:"total_lectures_by_faculty"`
	LectureAttended        int   `json:"lectureAttended" db:"lecture_attended"`

	// Relation, populated by read-side joins
	Subject *Subject `json:"subject,omitempty"`
}
