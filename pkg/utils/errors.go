package utils

import "fmt"

// FieldError is a validation failure scoped to a single input field.
// Handlers unwrap it to build the errors map of the JSON envelope.
type FieldError struct {
	Field   string
	Message string
}

func NewFieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
}
