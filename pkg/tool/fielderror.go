package tool

import (
	"fmt"
	"strings"
)

// ErrorKind classifies one validation failure. The set is closed so that
// consumers can switch over it.
type ErrorKind string

const (
	KindRequired        ErrorKind = "required"
	KindInvalidNumber   ErrorKind = "invalid_number"
	KindOutOfRange      ErrorKind = "out_of_range"
	KindInvalidBoolean  ErrorKind = "invalid_boolean"
	KindNotAnOption     ErrorKind = "not_an_option"
	KindInvalidJSON     ErrorKind = "invalid_json"
	KindSchemaViolation ErrorKind = "schema_violation"
	KindInvalidFile     ErrorKind = "invalid_file"
	KindInvalidColor    ErrorKind = "invalid_color"
	KindInvalidDate     ErrorKind = "invalid_date"
	KindInvalidURL      ErrorKind = "invalid_url"
	KindInvalidEmail    ErrorKind = "invalid_email"
	KindTooShort        ErrorKind = "too_short"
	KindTooLong         ErrorKind = "too_long"
	KindPatternMismatch ErrorKind = "pattern_mismatch"

	// Definition-level kinds, reported at registration time only.
	KindMissingField     ErrorKind = "missing_field"
	KindInvalidSlug      ErrorKind = "invalid_slug"
	KindInvalidCategory  ErrorKind = "invalid_category"
	KindInvalidFieldType ErrorKind = "invalid_field_type"
	KindDuplicateName    ErrorKind = "duplicate_name"
	KindInvalidSchema    ErrorKind = "invalid_schema"
	KindInvalidExample   ErrorKind = "invalid_example"
)

// FieldError is one validation failure, naming the offending field.
type FieldError struct {
	Field   string    `json:"field"`
	Message string    `json:"message"`
	Kind    ErrorKind `json:"kind"`
}

// Error implements the error interface.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FieldErrors aggregates validation failures across fields.
type FieldErrors []FieldError

// Error implements the error interface.
func (e FieldErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}
