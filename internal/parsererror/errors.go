// Package parsererror defines the typed errors shared by ingestion, creation and
// aggregation code.
package parsererror

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTypeConflict is wrapped when a signed amount disagrees with its income/expense tag.
var ErrTypeConflict = errors.New("amount sign contradicts transaction type")

// ParseError represents an error during parsing
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FieldError describes one invalid input field.
type FieldError struct {
	Field  string
	Reason string
}

// ValidationError collects every invalid field of a user supplied input.
type ValidationError struct {
	Fields []FieldError
}

// Add records a failing field.
func (e *ValidationError) Add(field, reason string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

// HasErrors reports whether any field failed.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// FieldNames returns the failing field names in the order they were recorded.
func (e *ValidationError) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return names
}

// Has reports whether the named field failed.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Reason))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// InvalidConfigurationError is returned when a computation is given a parameter it
// cannot work with, such as a non-positive spending limit.
type InvalidConfigurationError struct {
	Parameter string
	Value     string
	Reason    string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %s=%s: %s", e.Parameter, e.Value, e.Reason)
}
