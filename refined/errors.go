// SPDX-License-Identifier: MIT
// Package: refined
//
// errors.go - sentinel errors and the single runtime failure type.
//
// Error policy:
//   • Only Cast (and its typed/ingestion variants) fails at runtime; it
//     returns *DomainError, which matches ErrDomainViolation via errors.Is.
//   • Descriptor validation returns the remaining sentinels, wrapped with
//     the validating method as context ("Validate: refined: ...").
//   • Constructors handed an invalid Descriptor panic (programmer error),
//     the same way option constructors do.

package refined

import (
	"errors"
	"fmt"
)

var (
	// ErrDomainViolation classifies every cast failure. The concrete error is
	// always a *DomainError carrying the rejected value.
	ErrDomainViolation = errors.New("refined: value outside domain")

	// ErrInvalidBounds indicates NaN or infinite bounds, or Min > Max.
	ErrInvalidBounds = errors.New("refined: invalid domain bounds")

	// ErrEmptyDomain indicates the descriptor admits no value, or admits zero
	// only (no non-zero member to draw or clamp toward).
	ErrEmptyDomain = errors.New("refined: domain has no admissible non-zero member")

	// ErrUnknownCategory indicates an integer category outside
	// {NotInteger, Integer, SafeInteger}.
	ErrUnknownCategory = errors.New("refined: unknown integer category")

	// ErrEmptyTypeName indicates a descriptor without a display name.
	ErrEmptyTypeName = errors.New("refined: empty type name")

	// ErrEmptyArgs indicates an untyped variadic extremum called with no values.
	ErrEmptyArgs = errors.New("refined: at least one argument is required")
)

// DomainError reports a value rejected by Cast.
// Its message is stable and bit-for-bit compatible with dependent tooling:
//
//	Expected <TypeName>, got: <Got>
type DomainError struct {
	// TypeName is the descriptor's display name.
	TypeName string
	// Value is the rejected number (NaN when the input was not a number at all).
	Value float64
	// Got is the rejected input as rendered in the message.
	Got string
}

// Error implements error.
func (e *DomainError) Error() string {
	return fmt.Sprintf("Expected %s, got: %s", e.TypeName, e.Got)
}

// Is reports whether target is ErrDomainViolation.
func (e *DomainError) Is(target error) bool {
	return target == ErrDomainViolation
}

// newDomainError renders v the way the message format requires.
func newDomainError(typeName string, v float64) *DomainError {
	return &DomainError{TypeName: typeName, Value: v, Got: FormatNumber(v)}
}

// refinedErrorf attaches method context to a sentinel while keeping it
// matchable with errors.Is.
func refinedErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
