package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// FieldViolation describes one invalid field on a submitted payload.
type FieldViolation struct {
	// Field is the JSON name of the offending field.
	Field string `json:"field"`
	// Reason explains why the value was rejected.
	Reason string `json:"reason"`
}

// ValidationError aggregates every field-level violation found while
// validating a payload.  Callers collect all violations before returning so
// that a single round trip reports the complete set, never just the first.
type ValidationError struct {
	Violations []FieldViolation `json:"violations"`
}

// NewValidationError constructs an empty ValidationError ready to collect
// violations via Add.
func NewValidationError() *ValidationError {
	return &ValidationError{}
}

// Add appends one field violation.  It is safe to call on a nil receiver
// check-free because callers always construct via NewValidationError.
func (e *ValidationError) Add(field, reason string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Reason: reason})
}

// Addf appends one field violation with a formatted reason.
func (e *ValidationError) Addf(field, format string, args ...interface{}) {
	e.Add(field, fmt.Sprintf(format, args...))
}

// HasViolations reports whether any violations were collected.
func (e *ValidationError) HasViolations() bool {
	return len(e.Violations) > 0
}

// ErrOrNil returns the receiver as an error when violations exist, nil
// otherwise.  This keeps call sites to a single line:
//
//	return ve.ErrOrNil()
func (e *ValidationError) ErrOrNil() error {
	if e.HasViolations() {
		return e
	}
	return nil
}

// AsValidationError reports whether err is (or wraps) a *ValidationError,
// assigning it to target on success.
func AsValidationError(err error, target **ValidationError) bool {
	return stderrors.As(err, target)
}

// Error implements the standard error interface, listing every violation.
func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Reason))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
