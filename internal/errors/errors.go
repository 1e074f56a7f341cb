package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrCodeExampleNotFound is returned when neither a document nor a code
	// example matches a requested id
	ErrCodeExampleNotFound = errors.New("code example not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// CodeExampleNotFoundError represents a failed code example lookup with context
type CodeExampleNotFoundError struct {
	ID string
}

func (e *CodeExampleNotFoundError) Error() string {
	return fmt.Sprintf("no document or code example with ID '%s'", e.ID)
}

func (e *CodeExampleNotFoundError) Is(target error) bool {
	return target == ErrCodeExampleNotFound
}

// NewCodeExampleNotFoundError creates a new CodeExampleNotFoundError
func NewCodeExampleNotFoundError(id string) *CodeExampleNotFoundError {
	return &CodeExampleNotFoundError{ID: id}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
