// SPDX-License-Identifier: MIT
// Package: refined
//
// descriptor.go - static domain description and its validation.
//
// A Descriptor is created once per domain and never mutated. Validation
// follows a fixed order (name → category → bounds → integral members →
// non-zero members) so the reported sentinel is deterministic when several
// checks fail at once.

package refined

import (
	"fmt"
	"math"
)

// Category selects the integrality constraint of a domain.
type Category int

const (
	// NotInteger is a float domain: finiteness is the only constraint
	// beyond the bounds.
	NotInteger Category = iota

	// Integer requires a mathematical integer; values may exceed the range
	// where float64 integer arithmetic is exact.
	Integer

	// SafeInteger requires an integer with |x| ≤ MaxSafeInteger.
	SafeInteger
)

// Exact-integer range of float64.
const (
	MaxSafeInteger = 1<<53 - 1
	MinSafeInteger = -MaxSafeInteger
)

// Configuration names of the integer categories (see Config).
const (
	categoryNameInteger     = "Integer"
	categoryNameSafeInteger = "SafeInteger"
)

// String returns the configuration name of c.
func (c Category) String() string {
	switch c {
	case NotInteger:
		return "NotInteger"
	case Integer:
		return categoryNameInteger
	case SafeInteger:
		return categoryNameSafeInteger
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// integral reports whether c constrains values to integers.
func (c Category) integral() bool {
	return c == Integer || c == SafeInteger
}

// Descriptor is the static description of a refined domain.
type Descriptor struct {
	// Min and Max are the inclusive, finite bounds.
	Min, Max float64

	// Category is the integrality constraint.
	Category Category

	// ExcludeZero removes 0 from the domain even when it lies in [Min, Max].
	ExcludeZero bool

	// TypeName is used verbatim in cast failure messages.
	TypeName string
}

// Validate checks the descriptor invariants.
//
// Errors (wrapped with "Validate"):
//   - ErrEmptyTypeName   - TypeName is empty.
//   - ErrUnknownCategory - Category is not one of the three known values.
//   - ErrInvalidBounds   - a bound is NaN or infinite, or Min > Max.
//   - ErrEmptyDomain     - no member satisfies the category, or the only
//     member is zero.
//
// Complexity: O(1).
func (d Descriptor) Validate() error {
	if d.TypeName == "" {
		return refinedErrorf("Validate", ErrEmptyTypeName)
	}
	if d.Category < NotInteger || d.Category > SafeInteger {
		return refinedErrorf("Validate", ErrUnknownCategory)
	}
	if !isFinite(d.Min) || !isFinite(d.Max) || d.Min > d.Max {
		return refinedErrorf("Validate", ErrInvalidBounds)
	}

	lo, hi := d.effectiveBounds()
	if lo > hi {
		return refinedErrorf("Validate", ErrEmptyDomain)
	}
	// Zero is then either excluded (leaving nothing) or the sole member,
	// which leaves nothing to draw non-zero values or clamp toward.
	if lo == 0 && hi == 0 {
		return refinedErrorf("Validate", ErrEmptyDomain)
	}

	return nil
}

// effectiveBounds returns the smallest and largest members that satisfy the
// category. For float domains they equal Min and Max; integer domains round
// the bounds inward, and safe-integer domains also intersect with the safe
// range. The result may be empty (lo > hi).
func (d Descriptor) effectiveBounds() (lo, hi float64) {
	lo, hi = d.Min, d.Max
	if !d.Category.integral() {
		return lo, hi
	}

	lo, hi = math.Ceil(lo), math.Floor(hi)
	if d.Category == SafeInteger {
		lo = math.Max(lo, MinSafeInteger)
		hi = math.Min(hi, MaxSafeInteger)
	}

	return lo, hi
}

// Config is the external configuration record a domain can be declared
// with. It mirrors Descriptor field by field under the configuration names.
type Config struct {
	// IntegerOrSafeInteger is "Integer", "SafeInteger" or "" (float domain).
	IntegerOrSafeInteger string
	// NonZero excludes 0 from the domain.
	NonZero bool
	// MinValue and MaxValue are the inclusive bounds.
	MinValue, MaxValue float64
	// TypeNameInMessage is used verbatim in cast failure messages.
	TypeNameInMessage string
}

// Descriptor converts c into a Descriptor.
// Returns ErrUnknownCategory for an unrecognized IntegerOrSafeInteger.
// The result is not validated; New and Descriptor.Validate do that.
func (c Config) Descriptor() (Descriptor, error) {
	var cat Category
	switch c.IntegerOrSafeInteger {
	case "":
		cat = NotInteger
	case categoryNameInteger:
		cat = Integer
	case categoryNameSafeInteger:
		cat = SafeInteger
	default:
		return Descriptor{}, fmt.Errorf("Config.Descriptor: %q: %w", c.IntegerOrSafeInteger, ErrUnknownCategory)
	}

	return Descriptor{
		Min:         c.MinValue,
		Max:         c.MaxValue,
		Category:    cat,
		ExcludeZero: c.NonZero,
		TypeName:    c.TypeNameInMessage,
	}, nil
}

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
