package validation

import (
	"fmt"
	"strings"
)

// Error taxonomy codes. Every rejection carries exactly one of these.
const (
	CodeRequired    = "required"
	CodeOutOfRange  = "out_of_range"
	CodeInvalidEnum = "invalid_enum"
	CodeMalformed   = "malformed_number"
)

// FieldError attributes a single rule violation to one field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Errors is the full rejection list for one candidate record.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Error())
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether any error was recorded for the field.
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// OrNil returns the list as an error value, nil when empty. Validators
// must return this instead of a typed nil Errors.
func (e Errors) OrNil() Errors {
	if len(e) == 0 {
		return nil
	}
	return e
}

func required(field string) FieldError {
	return FieldError{Field: field, Code: CodeRequired, Message: field + " is required"}
}

// itemField prefixes a nested collection error with its row index.
func itemField(i int, field string) string {
	return fmt.Sprintf("items[%d].%s", i, field)
}

func enumError(field, got string, allowed []string) FieldError {
	return FieldError{
		Field:   field,
		Code:    CodeInvalidEnum,
		Message: fmt.Sprintf("invalid %s %q, must be one of: %s", field, got, strings.Join(allowed, ", ")),
	}
}
