package colour

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoCandidates is returned by BestTextColor when it has nothing to choose from.
var ErrNoCandidates = errors.New("no candidate colours provided")

// ParseError reports a malformed colour string.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid colour %q: %s", e.Input, e.Reason)
}

// RangeError reports a numeric value outside its valid domain, including NaN and ±Inf.
type RangeError struct {
	Field string
	Value float64
	Want  string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s out of range: got %v, want %s", e.Field, e.Value, e.Want)
}

// ValidationErrors collects every problem found while validating an input
// rather than stopping at the first one.
type ValidationErrors []error

// Error joins all messages onto one line.
func (v ValidationErrors) Error() string {
	switch len(v) {
	case 0:
		return "no validation errors"
	case 1:
		return v[0].Error()
	}
	msgs := make([]string, len(v))
	for i, err := range v {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d validation errors: %s", len(v), strings.Join(msgs, "; "))
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (v ValidationErrors) Unwrap() []error {
	return v
}

// Err returns nil for an empty list, so callers can `return errs.Err()`.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// FieldError prefixes an error with the name of the field it belongs to.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
