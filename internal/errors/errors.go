package errors

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Common error types that can be used across the application
var (
	ErrNotFound          = new(ErrCodeNotFound, "resource not found")
	ErrInvalidIdentifier = new(ErrCodeInvalidIdentifier, "invalid identifier")
	ErrValidation        = new(ErrCodeValidation, "validation error")
	ErrPermissionDenied  = new(ErrCodePermissionDenied, "permission denied")
	ErrDatabase          = new(ErrCodeDatabase, "database error")
	ErrSystem            = new(ErrCodeSystemError, "system error")
	// maps errors to http status codes
	statusCodeMap = map[error]int{
		ErrDatabase:          http.StatusInternalServerError,
		ErrNotFound:          http.StatusNotFound,
		ErrInvalidIdentifier: http.StatusBadRequest,
		ErrValidation:        http.StatusBadRequest,
		ErrPermissionDenied:  http.StatusUnauthorized,
		ErrSystem:            http.StatusInternalServerError,
	}
)

const (
	ErrCodeSystemError       = "system_error"
	ErrCodeNotFound          = "not_found"
	ErrCodeInvalidIdentifier = "invalid_identifier"
	ErrCodeValidation        = "validation_error"
	ErrCodePermissionDenied  = "permission_denied"
	ErrCodeDatabase          = "database_error"
)

// InternalError represents a domain error
type InternalError struct {
	Code    string // Machine-readable error code
	Message string // Human-readable error message
	Op      string // Logical operation name
	Err     error  // Underlying error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.DisplayError()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) DisplayError() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is implements error matching for wrapped errors
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

func new(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidIdentifier checks if an error is an invalid identifier error
func IsInvalidIdentifier(err error) bool {
	return errors.Is(err, ErrInvalidIdentifier)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsDatabase checks if an error is a storage error
func IsDatabase(err error) bool {
	return errors.Is(err, ErrDatabase)
}

// IsPermissionDenied checks if an error is a permission denied error
func IsPermissionDenied(err error) bool {
	return errors.Is(err, ErrPermissionDenied)
}

// IsSystem checks if an error is an unexpected system error
func IsSystem(err error) bool {
	return errors.Is(err, ErrSystem)
}

// Code returns the machine readable code of the first sentinel the error is marked with.
// Unclassified errors report system_error.
func Code(err error) string {
	for _, sentinel := range []*InternalError{
		ErrNotFound, ErrInvalidIdentifier, ErrValidation, ErrPermissionDenied, ErrDatabase, ErrSystem,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Code
		}
	}
	return ErrCodeSystemError
}

// Hint returns the first non-empty hint attached to the error chain
func Hint(err error) string {
	for _, hint := range errors.GetAllHints(err) {
		if hint != "" {
			return hint
		}
	}
	return ""
}

func HTTPStatusFromErr(err error) int {
	for e, status := range statusCodeMap {
		if errors.Is(err, e) {
			return status
		}
	}
	return http.StatusInternalServerError
}
