package domain

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError carries field-level validation detail. It collects
// every violated field so a single response can report them all.
type ValidationError struct {
	// Fields maps a field name to a human-readable description of the
	// violated constraint.
	Fields map[string]string
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// Violations accumulates field violations and builds a ValidationError
// once all checks have run.
type Violations struct {
	fields map[string]string
}

// Add records a violation for the given field. Later violations for the
// same field overwrite earlier ones.
func (v *Violations) Add(field, message string) {
	if v.fields == nil {
		v.fields = make(map[string]string)
	}
	v.fields[field] = message
}

// Err returns a ValidationError covering every recorded violation, or
// nil if none were recorded.
func (v *Violations) Err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: v.fields}
}

// Error implements the error interface. Fields are listed in a stable
// order so the message is deterministic.
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s %s", name, e.Fields[name]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap makes errors.Is(err, ErrValidation) hold for ValidationErrors.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
