package models

import "time"

// Admin defines the admin model based on the 'admins' table.
// Email and username are unique within the table; the username is generated
// at creation time and never changes afterwards.
type Admin struct {
	ID              int64     `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Email           string    `json:"email" db:"email"`
	Username        string    `json:"username" db:"username"`
	Password        string    `json:"-" db:"password"`
	PasswordUpdated bool      `json:"passwordUpdated" db:"password_updated"`
	Department      *string   `json:"department,omitempty" db:"department"`
	DOB             *string   `json:"dob,omitempty" db:"dob"`
	JoiningYear     *string   `json:"joiningYear,omitempty" db:"joining_year"`
	ContactNumber   *string   `json:"contactNumber,omitempty" db:"contact_number"`
	Avatar          *string   `json:"avatar,omitempty" db:"avatar"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

// Faculty defines the faculty model based on the 'faculty' table
type Faculty struct {
	ID              int64     `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Email           string    `json:"email" db:"email"`
	Username        string    `json:"username" db:"username"`
	Password        string    `json:"-" db:"password"`
	PasswordUpdated bool      `json:"passwordUpdated" db:"password_updated"`
	Department      string    `json:"department" db:"department"`
	Designation     string    `json:"designation" db:"designation"`
	DOB             string    `json:"dob" db:"dob"`
	JoiningYear     int       `json:"joiningYear" db:"joining_year"`
	Gender          *string   `json:"gender,omitempty" db:"gender"`
	ContactNumber   *string   `json:"contactNumber,omitempty" db:"contact_number"`
	Avatar          *string   `json:"avatar,omitempty" db:"avatar"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

// Student defines the student model based on the 'students' table
type Student struct {
	ID                  int64     `json:"id" db:"id"`
	Name                string    `json:"name" db:"name"`
	Email               string    `json:"email" db:"email"`
	Username            string    `json:"username" db:"username"`
	Password            string    `json:"-" db:"password"`
	PasswordUpdated     bool      `json:"passwordUpdated" db:"password_updated"`
	Department          string    `json:"department" db:"department"`
	Year                int       `json:"year" db:"year"`
	Section             string    `json:"section" db:"section"`
	DOB                 string    `json:"dob" db:"dob"`
	Gender              *string   `json:"gender,omitempty" db:"gender"`
	ContactNumber       *string   `json:"contactNumber,omitempty" db:"contact_number"`
	Avatar              *string   `json:"avatar,omitempty" db:"avatar"`
	FatherName          *string   `json:"fatherName,omitempty" db:"father_name"`
	MotherName          *string   `json:"motherName,omitempty" db:"mother_name"`
	FatherContactNumber *string   `json:"fatherContactNumber,omitempty" db:"father_contact_number"`
	MotherContactNumber *string   `json:"motherContactNumber,omitempty" db:"mother_contact_number"`
	Batch               *string   `json:"batch,omitempty" db:"batch"`
	CreatedAt           time.Time `json:"createdAt" db:"created_at"`
}
