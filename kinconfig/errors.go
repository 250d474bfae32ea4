package kinconfig

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNoDocuments is returned when an info file contains no YAML documents at all.
var ErrNoDocuments = errors.New("no YAML documents found")

// IOError is returned when the info file cannot be opened or read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("cannot read info file %q: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseError is returned when the info file is not well-formed YAML.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse info file: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaError is returned when a key is missing or its value has the wrong type or shape. Field is
// the top-level key the problem was found under, empty when the document root itself is wrong.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return "schema error: " + e.Reason
	}
	return fmt.Sprintf("schema error on %q: %s", e.Field, e.Reason)
}

// ValidationError is reported by Validate when fields that must agree with each other do not.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %q: %s", e.Field, e.Reason)
}

// NewSchemaError returns a SchemaError for field.
func NewSchemaError(field, reason string) error {
	return &SchemaError{Field: field, Reason: reason}
}

// NewMissingKeyError is used when a required top-level key is absent.
func NewMissingKeyError(field, expected string) error {
	return NewSchemaError(field, "required key is missing, expected "+expected)
}

// NewDuplicateKeyError is used when a top-level key is defined more than once.
func NewDuplicateKeyError(field string, line int) error {
	return NewSchemaError(field, fmt.Sprintf("key defined more than once (line %d)", line))
}

// NewValidationError returns a ValidationError for field.
func NewValidationError(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
