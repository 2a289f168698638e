package config

import "fmt"

// FieldError reports an invalid configuration field.
type FieldError struct {
	Field  string
	Reason string
}

// NewFieldError creates a FieldError.
func NewFieldError(field, reason string) *FieldError {
	return &FieldError{Field: field, Reason: reason}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("config field %s: %s", e.Field, e.Reason)
}
