package models

// RoleType identifies which of the three role tables an account lives in
type RoleType string

const (
	RoleAdmin   RoleType = "ADMIN"
	RoleFaculty RoleType = "FACULTY"
	RoleStudent RoleType = "STUDENT"
)

// UsernamePrefix returns the role prefix used in generated usernames
func (r RoleType) UsernamePrefix() string {
	switch r {
	case RoleAdmin:
		return "ADM"
	case RoleFaculty:
		return "FAC"
	case RoleStudent:
		return "STU"
	}
	return ""
}

// Valid reports whether the role is one of the three known roles
func (r RoleType) Valid() bool {
	return r == RoleAdmin || r == RoleFaculty || r == RoleStudent
}
