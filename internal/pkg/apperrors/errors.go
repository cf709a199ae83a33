package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Student errors
var (
	ErrStudentNotFound             = errors.New("student not found")
	ErrStudentEmailExists          = errors.New("student with this email already exists")
	ErrStudentNumberExists         = errors.New("student number already exists")
	ErrStudentNationalIDExists     = errors.New("student with this national ID already exists")
	ErrStudentDepartmentNotFound   = errors.New("department for student not found")
	ErrStudentHasActiveEnrollments = errors.New("student has active enrollments")
)

// Department errors
var (
	ErrDepartmentNotFound      = errors.New("department not found")
	ErrDepartmentAlreadyExists = errors.New("department with this name or code already exists")
	ErrDepartmentHasRelations  = errors.New("department is referenced by students or courses and cannot be deleted")
)

// Course errors
var (
	ErrCourseNotFound         = errors.New("course not found")
	ErrCourseCodeExists       = errors.New("course with this code already exists")
	ErrCourseHasRelations     = errors.New("course has enrollments or attendance records and cannot be deleted")
	ErrCourseCapacityFull     = errors.New("course has reached its maximum number of students")
	ErrCourseCapacityTooSmall = errors.New("maximum students cannot be lower than the current active enrollment count")
	ErrCourseInactive         = errors.New("course is not active")
	ErrCourseDeptNotFound     = errors.New("department for course not found")
)

// Enrollment errors
var (
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrAlreadyEnrolled    = errors.New("student is already enrolled in this course")
)

// Attendance errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAttendanceExists   = errors.New("attendance already recorded for this student, course and date")
)

// Fee errors
var (
	ErrFeeNotFound       = errors.New("fee record not found")
	ErrFeeOverpayment    = errors.New("payment exceeds outstanding fee amount")
	ErrFeeAlreadySettled = errors.New("fee is already fully paid or waived")
)

// Announcement errors
var (
	ErrAnnouncementNotFound = errors.New("announcement not found")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
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

// NewCustomError creates a CustomError with an underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewConflictError creates a new custom error for conflict situations
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewResourceNotFoundError creates a new custom error for resource not found
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad requests
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}
