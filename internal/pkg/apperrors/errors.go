package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")
	ErrInvalidData      = errors.New("invalid data")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// Student errors
var (
	ErrStudentNotFound      = errors.New("student not found")
	ErrRegistrationNoExists = errors.New("registration number already exists")
)

// Course errors
var (
	ErrCourseNotFound      = errors.New("course not found")
	ErrCourseAlreadyExists = errors.New("course with this code or name already exists")
)

// Result errors
var (
	ErrEnrollmentsNotFound = errors.New("no enrollments found for student")
	ErrResultsNotFound     = errors.New("no results found for student")
)

// NewMissingFieldError creates a validation error naming the first missing field.
func NewMissingFieldError(field, message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Field:   field,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Field   string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
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
