// Package bench holds the error kinds shared by the benchmark harness packages.
//
// Every failure surfaced by the workload generator, the variant registry and
// the runner wraps one of the sentinel errors below, so callers can classify
// it with errors.Is regardless of which package produced it:
//
//	if errors.Is(err, bench.ErrUnknownVariant) {
//	    // list the registered variants
//	}
package bench

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned for non-positive sizes, malformed seeds
	// and other rejected arguments.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnknownVariant is returned when a variant name or tag is not registered.
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrTypeMismatch is returned at registration time when a variant's input
	// or output shape does not match its tag's contract.
	ErrTypeMismatch = errors.New("type mismatch")
)

// ParameterError describes a rejected argument.
type ParameterError struct {
	Field   string
	Value   any
	Message string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter '%s' (%v): %s", e.Field, e.Value, e.Message)
}

func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }

// InvalidParameter builds a ParameterError.
func InvalidParameter(field string, value any, format string, args ...any) error {
	return &ParameterError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)}
}

// VariantError reports a lookup of a tag or variant that is not registered.
type VariantError struct {
	Tag  string
	Name string
}

func (e *VariantError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("unknown workload tag: %s", e.Tag)
	}
	return fmt.Sprintf("unknown variant '%s' for tag '%s'", e.Name, e.Tag)
}

func (e *VariantError) Unwrap() error { return ErrUnknownVariant }

// MismatchError reports a variant whose function shape disagrees with the
// contract of the tag it was registered under.
type MismatchError struct {
	Tag   string
	Name  string
	Field string // "input" or "output"
	Want  string
	Got   string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("variant '%s' for tag '%s': %s type is %s, contract requires %s",
		e.Name, e.Tag, e.Field, e.Got, e.Want)
}

func (e *MismatchError) Unwrap() error { return ErrTypeMismatch }
