package validation

// Validator collects validation errors.
type Validator struct {
	errors []FieldError
}

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// New creates a new Validator.
func New() *Validator {
	return &Validator{
		errors: make([]FieldError, 0),
	}
}

// AddError adds a field error.
func (v *Validator) AddError(field, message string) {
	v.errors = append(v.errors, FieldError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns all validation errors in the order they were added.
func (v *Validator) Errors() []FieldError {
	return v.errors
}

// Group converts an ordered error list into a field-keyed map.
func Group(fieldErrors []FieldError) map[string][]string {
	grouped := make(map[string][]string, len(fieldErrors))
	for _, fe := range fieldErrors {
		grouped[fe.Field] = append(grouped[fe.Field], fe.Message)
	}
	return grouped
}
