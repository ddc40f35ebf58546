// Package validate accumulates field-level validation failures so a whole
// configuration can be checked in one pass and reported together.
package validate

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// Error is a single failed check.
type Error struct {
	Field   string // dotted path, e.g. "socials[2].href"
	Value   any    // the rejected value
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validator collects errors. The zero value is ready to use.
type Validator struct {
	errors []Error
}

// ValidationError bundles every failure found by a Validator.
type ValidationError struct {
	errors []Error
}

// New creates a new validator.
func New() *Validator {
	return &Validator{}
}

// AddError records a failure for field.
func (v *Validator) AddError(field, message string, value any) {
	v.errors = append(v.errors, Error{
		Field:   field,
		Value:   value,
		Message: message,
	})
}

// IsValid returns true if no errors have been recorded.
func (v *Validator) IsValid() bool {
	return len(v.errors) == 0
}

// Errors returns the recorded errors in the order they were found.
func (v *Validator) Errors() []Error {
	return v.errors
}

// Err returns nil when valid, otherwise a ValidationError holding a copy of
// the recorded errors.
func (v *Validator) Err() error {
	if len(v.errors) == 0 {
		return nil
	}
	return &ValidationError{errors: slices.Clone(v.errors)}
}

// Errors returns the individual failures.
func (e *ValidationError) Errors() []Error {
	return e.errors
}

// Fields returns the failing field names in report order.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.errors))
	for i, err := range e.errors {
		out[i] = err.Field
	}
	return out
}

// Has reports whether field failed at least one check.
func (e *ValidationError) Has(field string) bool {
	for _, err := range e.errors {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (e *ValidationError) Error() string {
	switch len(e.errors) {
	case 0:
		return ""
	case 1:
		return e.errors[0].Error()
	}
	msgs := make([]string, len(e.errors))
	for i, err := range e.errors {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Required fails when value is empty after trimming whitespace.
func (v *Validator) Required(field, value string) bool {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "must not be empty", value)
		return false
	}
	return true
}

// Positive fails when n <= 0.
func (v *Validator) Positive(field string, n int) {
	if n <= 0 {
		v.AddError(field, fmt.Sprintf("must be positive, got %d", n), n)
	}
}

// NonNegative fails when n < 0.
func (v *Validator) NonNegative(field string, n int64) {
	if n < 0 {
		v.AddError(field, fmt.Sprintf("must not be negative, got %d", n), n)
	}
}

// URL checks that value is an absolute URL with a host and, when
// allowedSchemes is non-empty, one of those schemes.
func (v *Validator) URL(field, value string, allowedSchemes []string) {
	if value == "" {
		v.AddError(field, "URL cannot be empty", value)
		return
	}

	u, err := url.Parse(value)
	if err != nil {
		v.AddError(field, fmt.Sprintf("invalid URL: %v", err), value)
		return
	}
	if u.Host == "" {
		v.AddError(field, "URL must have a host", value)
		return
	}
	if len(allowedSchemes) > 0 && !slices.Contains(allowedSchemes, u.Scheme) {
		v.AddError(field,
			fmt.Sprintf("unsupported URL scheme %q (allowed: %v)", u.Scheme, allowedSchemes),
			value)
	}
}

// Mailto checks that value is a mailto: URI with an address part.
func (v *Validator) Mailto(field, value string) {
	u, err := url.Parse(value)
	if err != nil {
		v.AddError(field, fmt.Sprintf("invalid URI: %v", err), value)
		return
	}
	if u.Scheme != "mailto" || u.Opaque == "" || !strings.Contains(u.Opaque, "@") {
		v.AddError(field, "must be a mailto: URI with an address", value)
	}
}
