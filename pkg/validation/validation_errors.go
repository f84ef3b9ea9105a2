package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-facing labels
var FieldLabels = map[string]string{
	"Name":    "Name",
	"Email":   "Email",
	"Subject": "Subject",
	"Message": "Message",
}

// TagMessages overrides the generated message for a tag regardless of field
var TagMessages = map[string]string{
	"email":         "Please enter a valid email address",
	"email_address": "Please enter a valid email address",
}

// FieldErrors converts validator.ValidationErrors into messages keyed by
// field name. Each failing field gets its own key. Returns nil when err is
// not a validation error.
func FieldErrors(err error) map[string][]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	fields := make(map[string][]string, len(validationErrors))
	for _, e := range validationErrors {
		key := e.Field()
		fields[key] = append(fields[key], formatSingleError(e))
	}
	return fields
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.StructField())
	tag := e.Tag()
	param := e.Param()

	if msg, ok := TagMessages[tag]; ok {
		return msg
	}

	switch tag {
	case "required", "present":
		return "Required"

	case "is_string":
		return fmt.Sprintf("Expected string, received %s", jsonKind(e.Kind()))

	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, param)

	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, param)

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s is invalid (%s)", label, tag)
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return fieldName
}
