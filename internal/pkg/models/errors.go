package models

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidInput marks request data that failed structural, type or enum validation
	ErrInvalidInput = errors.New("invalid input")
	// ErrTransactionNotFound is returned when a lookup by id yields no row
	ErrTransactionNotFound = errors.New("transaction not found")
)

// FieldIssue describes one failed validation rule
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every issue found in a request.
// It matches ErrInvalidInput with errors.Is.
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return ErrInvalidInput.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.Field+": "+issue.Message)
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError builds a ValidationError from a single issue
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Issues: []FieldIssue{{Field: field, Message: message}}}
}
