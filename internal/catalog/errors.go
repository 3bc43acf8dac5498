package catalog

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrMissingData is returned when a derived property is requested on a
	// record lacking a required optional field.
	ErrMissingData = errors.New("missing data")

	// ErrPermission is returned when a capability check failed for a gated
	// operation.
	ErrPermission = errors.New("permission denied")

	// ErrConflict is returned when a version-checked update lost a race
	// against a concurrent writer.
	ErrConflict = errors.New("conflict")
)

// FieldError describes a single invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports malformed or constraint-violating input.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// NewValidationError builds a single-field validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}
