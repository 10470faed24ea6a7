package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one per-field validation failure, keyed by the JSON field
// name so clients can attach the message to the offending input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// fieldLabels maps JSON field names to user-facing labels
var fieldLabels = map[string]string{
	"name":            "Name",
	"email":           "Email",
	"company":         "Company",
	"timeline":        "Timeline",
	"isDecisionMaker": "Decision maker confirmation",
	"projectType":     "Project type",
	"budget":          "Budget",
	"message":         "Message",
	"captchaToken":    "Verification token",
	"elapsedSeconds":  "Elapsed time",
}

// FormatFieldErrors converts validator errors into the structured per-field
// list returned in the response details array.
func FormatFieldErrors(err error) []FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := jsonFieldName(e.Field())
		out = append(out, FieldError{
			Field:   field,
			Message: formatSingleError(field, e),
		})
	}
	return out
}

func formatSingleError(field string, e validator.FieldError) string {
	label := fieldLabel(field)
	param := e.Param()

	switch e.Tag() {
	case "required":
		if e.Kind().String() == "bool" {
			return fmt.Sprintf("%s must be explicitly confirmed", label)
		}
		return fmt.Sprintf("%s is required", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at least %s", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at most %s", label, param)

	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(strings.Split(param, " "), ", "))

	case "email":
		return fmt.Sprintf("%s is not a valid email address", label)

	case "valid_name":
		return fmt.Sprintf("%s may only contain letters, spaces and common punctuation", label)

	case "no_emoji":
		return fmt.Sprintf("%s may not contain emoji or special symbols", label)

	default:
		return fmt.Sprintf("%s is invalid (%s)", label, e.Tag())
	}
}

func fieldLabel(field string) string {
	if label, ok := fieldLabels[field]; ok {
		return label
	}
	return field
}

// jsonFieldName lowercases the first rune of a struct field name, matching
// the camelCase JSON tags used across the submission payload.
func jsonFieldName(structField string) string {
	if structField == "" {
		return structField
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}
