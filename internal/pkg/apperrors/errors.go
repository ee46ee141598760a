package apperrors

import "errors"

// Common errors
var (
	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrBadRequest       = errors.New("bad request")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenMissing       = errors.New("token missing")
	ErrHeaderMissing      = errors.New("authorization header missing")
	ErrInvalidAuthFormat  = errors.New("invalid authorization format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Conflict errors
	ErrConflict = errors.New("conflict")
)

// Account errors
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Department errors
var (
	ErrDepartmentNotFound      = errors.New("department not found")
	ErrDepartmentAlreadyExists = errors.New("department already exists")
)

// Subject errors
var (
	ErrSubjectNotFound      = errors.New("subject not found")
	ErrSubjectAlreadyExists = errors.New("subject already exists")
)

// Test, marks and content errors
var (
	ErrTestNotFound          = errors.New("test not found")
	ErrTestAlreadyExists     = errors.New("test already exists")
	ErrMarksAlreadyUploaded  = errors.New("marks already uploaded for this test")
	ErrNoStudentsFound       = errors.New("no students found")
	ErrNoTestsFound          = errors.New("no tests found")
	ErrAttendanceNotFound    = errors.New("attendance not found")
	ErrNoticeAlreadyExists   = errors.New("notice already exists")
	ErrMaterialAlreadyExists = errors.New("study material already exists")
	ErrMaterialNotFound      = errors.New("study material not found")
)

// Is reports whether err matches target or any of errList.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// CustomError carries an underlying sentinel plus request-specific context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails attaches context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewConflictError creates a conflict error with a message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewNotFoundError wraps a not-found sentinel with a message
func NewNotFoundError(sentinel error, message string) error {
	return &CustomError{Err: sentinel, Message: message}
}
