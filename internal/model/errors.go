package model

// ValidationError reports malformed or constraint-violating input. Field
// names the offending attribute so callers can surface precise client
// errors without parsing message text.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Message }

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
