// Package validation collects field-level input errors so a request can be
// rejected with every problem at once.
package validation

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Error codes reported per field.
const (
	CodeRequired          = "required"
	CodeOutOfRange        = "out-of-range"
	CodeInvalidFormat     = "invalid-format"
	CodeInvalidForeignKey = "invalid-foreign-key"
	CodeDuplicate         = "duplicate"
)

// FieldError is one rejected field.
type FieldError struct {
	Field string
	Code  string
	Err   error
}

// Errors is a non-empty list of field errors. It unwraps to every attached
// cause, so errors.Is(err, common.ErrDuplicateEmail) works on it.
type Errors struct {
	Fields []FieldError
}

func (e *Errors) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Code))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e *Errors) Unwrap() []error {
	var errs []error
	for _, f := range e.Fields {
		if f.Err != nil {
			errs = append(errs, f.Err)
		}
	}
	return errs
}

// Has reports whether field was rejected with code.
func (e *Errors) Has(field, code string) bool {
	for _, f := range e.Fields {
		if f.Field == field && f.Code == code {
			return true
		}
	}
	return false
}

// Validator accumulates field errors.
type Validator struct {
	fields []FieldError
}

func New() *Validator {
	return &Validator{}
}

// Add records a failure for field.
func (v *Validator) Add(field, code string) *Validator {
	v.fields = append(v.fields, FieldError{Field: field, Code: code})
	return v
}

// AddErr records a failure for field caused by err.
func (v *Validator) AddErr(field, code string, err error) *Validator {
	v.fields = append(v.fields, FieldError{Field: field, Code: code, Err: err})
	return v
}

// Required fails field when value is blank.
func (v *Validator) Required(field, value string) bool {
	if strings.TrimSpace(value) == "" {
		v.Add(field, CodeRequired)
		return false
	}
	return true
}

// Length fails field when its rune count is outside [min, max].
func (v *Validator) Length(field, value string, min, max int) bool {
	n := utf8.RuneCountInString(value)
	if n < min || n > max {
		v.Add(field, CodeOutOfRange)
		return false
	}
	return true
}

// Email fails field when value is not a bare address.
func (v *Validator) Email(field, value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		v.Add(field, CodeInvalidFormat)
		return false
	}
	return true
}

// Valid reports whether nothing was recorded.
func (v *Validator) Valid() bool {
	return len(v.fields) == 0
}

// Err returns *Errors, or nil when everything passed.
func (v *Validator) Err() error {
	if v.Valid() {
		return nil
	}
	return &Errors{Fields: append([]FieldError(nil), v.fields...)}
}

// Single builds an *Errors holding one field failure.
func Single(field, code string, cause error) error {
	return New().AddErr(field, code, cause).Err()
}
