package common

// ValidationError reports a missing required booking field. The offending
// field name is preserved so callers can surface it verbatim.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "missing required field: " + e.Field
}

// NewValidationError builds a ValidationError for the given form field.
func NewValidationError(field string) *ValidationError {
	return &ValidationError{Field: field}
}
