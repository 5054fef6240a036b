package shared

import "fmt"

// DomainError represents a domain-level error that callers can branch on
// by code rather than message text.
type DomainError struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a validation error tied to a named field.
func NewValidationError(field, message string) *DomainError {
	return &DomainError{
		Code:    "VALIDATION_ERROR",
		Field:   field,
		Message: fmt.Sprintf("%s: %s", field, message),
	}
}

// NewGenerationError creates an error for a failed filing generation or export.
func NewGenerationError(message string) *DomainError {
	return &DomainError{
		Code:    "GENERATION_ERROR",
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound      = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput  = NewDomainError("INVALID_INPUT", "Invalid input provided")
)
