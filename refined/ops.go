// SPDX-License-Identifier: MIT
// Package: refined
//
// ops.go - the typed operator set.
//
// Ops[D] wraps the Kernel of domain D and brands every result as Value[D].
// D is a phantom type: its zero value provides the Descriptor and it never
// exists at runtime inside a Value.

package refined

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Domain is implemented by phantom domain types. Descriptor must be callable
// on the zero value and always return the same Descriptor.
type Domain interface {
	Descriptor() Descriptor
}

// NonZeroDomain marks domains that exclude zero, by ExcludeZero or by their
// bounds. Values of such domains are admissible divisors (see Div).
type NonZeroDomain interface {
	Domain
	ExcludesZero()
}

// Ops is the typed operator set of domain D. It is immutable and safe for
// concurrent use.
type Ops[D Domain] struct {
	k *Kernel
}

// NewOps builds the operator set of D.
// Panics when D's descriptor is invalid, or when D claims NonZeroDomain but
// admits zero (programmer errors, surfaced at package initialization).
// Complexity: O(len(opts)).
func NewOps[D Domain](opts ...Option) *Ops[D] {
	var d D
	k := MustNew(d.Descriptor(), opts...)
	if _, ok := any(d).(NonZeroDomain); ok && k.Is(0) {
		panic(fmt.Sprintf("refined: NewOps: %T claims NonZeroDomain but admits 0", d))
	}

	return &Ops[D]{k: k}
}

// Kernel returns the untyped operator set behind o.
func (o *Ops[D]) Kernel() *Kernel { return o.k }

// Descriptor returns the domain description.
func (o *Ops[D]) Descriptor() Descriptor { return o.k.desc }

// WithSource returns a copy of o drawing random values from src.
func (o *Ops[D]) WithSource(src Source) *Ops[D] {
	return &Ops[D]{k: o.k.WithSource(src)}
}

// MinValue returns the smallest member of D. It equals the effective lower
// bound unless that bound is a zero the domain excludes.
func (o *Ops[D]) MinValue() Value[D] { return o.Clamp(o.k.lo) }

// MaxValue returns the largest member of D.
func (o *Ops[D]) MaxValue() Value[D] { return o.Clamp(o.k.hi) }

// Is reports whether x is a member of D.
func (o *Ops[D]) Is(x float64) bool { return o.k.Is(x) }

// Cast brands x, or fails with a *DomainError.
func (o *Ops[D]) Cast(x float64) (Value[D], error) {
	v, err := o.k.Cast(x)
	if err != nil {
		return Value[D]{}, err
	}

	return Value[D]{v: v}, nil
}

// MustCast brands x and panics with the *DomainError when x is not a member.
// Use it for values that are members by construction.
func (o *Ops[D]) MustCast(x float64) Value[D] {
	v, err := o.Cast(x)
	if err != nil {
		panic(err)
	}

	return v
}

// Parse reads a decimal number ("42", "-1.5e3", "Infinity") and casts it.
// Unparsable input fails with a *DomainError quoting the raw text.
func (o *Ops[D]) Parse(s string) (Value[D], error) {
	v, err := o.k.Parse(s)
	if err != nil {
		return Value[D]{}, err
	}

	return Value[D]{v: v}, nil
}

// Clamp maps any x into D.
func (o *Ops[D]) Clamp(x float64) Value[D] { return Value[D]{v: o.k.Clamp(x)} }

// Abs returns the saturated absolute value of a.
func (o *Ops[D]) Abs(a Value[D]) Value[D] { return Value[D]{v: o.k.Abs(a.v)} }

// Add returns the saturated sum.
func (o *Ops[D]) Add(a, b Value[D]) Value[D] { return Value[D]{v: o.k.Add(a.v, b.v)} }

// Sub returns the saturated difference.
func (o *Ops[D]) Sub(a, b Value[D]) Value[D] { return Value[D]{v: o.k.Sub(a.v, b.v)} }

// Mul returns the saturated product.
func (o *Ops[D]) Mul(a, b Value[D]) Value[D] { return Value[D]{v: o.k.Mul(a.v, b.v)} }

// Pow returns the saturated power a ** b.
func (o *Ops[D]) Pow(a, b Value[D]) Value[D] { return Value[D]{v: o.k.Pow(a.v, b.v)} }

// Min returns the smallest argument.
func (o *Ops[D]) Min(first Value[D], rest ...Value[D]) Value[D] {
	m := first.v
	for _, x := range rest {
		m = math.Min(m, x.v)
	}

	return Value[D]{v: o.k.Clamp(m)}
}

// Max returns the largest argument.
func (o *Ops[D]) Max(first Value[D], rest ...Value[D]) Value[D] {
	m := first.v
	for _, x := range rest {
		m = math.Max(m, x.v)
	}

	return Value[D]{v: o.k.Clamp(m)}
}

// Random draws uniformly from D.
func (o *Ops[D]) Random() Value[D] { return Value[D]{v: o.k.Random()} }

// RandomBetween draws uniformly from [lo, hi] (swapped when lo > hi).
func (o *Ops[D]) RandomBetween(lo, hi Value[D]) Value[D] {
	return Value[D]{v: o.k.RandomBetween(lo.v, hi.v)}
}

// RandomNonZero draws uniformly from D minus zero; never returns 0.
func (o *Ops[D]) RandomNonZero() Value[D] { return Value[D]{v: o.k.RandomNonZero()} }

// Div returns the saturated quotient a / b of domain D: floor division for
// integer domains. The divisor comes from a zero-free domain Z, so b ≠ 0
// holds by construction and is not re-checked.
//
// Example:
//
//	q := refined.Div(numbers.Int8Ops, a, b) // a numbers.Int8, b numbers.NonZeroInt8
func Div[D Domain, Z NonZeroDomain](o *Ops[D], a Value[D], b Value[Z]) Value[D] {
	return Value[D]{v: o.k.Div(a.v, b.v)}
}

// CastInt casts any Go integer into D. Integers whose float64 image is
// inexact (beyond 2^53 and not representable) fail like non-members.
func CastInt[D Domain, N constraints.Integer](o *Ops[D], n N) (Value[D], error) {
	f, exact := exactFloat(n)
	if !exact {
		return Value[D]{}, &DomainError{TypeName: o.k.desc.TypeName, Value: f, Got: formatInteger(n)}
	}

	return o.Cast(f)
}

// CastFloat casts any Go float into D.
func CastFloat[D Domain, N constraints.Float](o *Ops[D], n N) (Value[D], error) {
	return o.Cast(float64(n))
}

// ClampInt maps any Go integer into D.
func ClampInt[D Domain, N constraints.Integer](o *Ops[D], n N) Value[D] {
	return o.Clamp(float64(n))
}

// exactFloat converts n and reports whether the conversion lost nothing.
func exactFloat[N constraints.Integer](n N) (float64, bool) {
	f := float64(n)
	if f >= MinSafeInteger && f <= MaxSafeInteger {
		return f, true
	}
	if n < 0 {
		// f ≥ -2^63 here, so the conversion back is defined.
		return f, int64(f) == int64(n)
	}
	if f >= 0x1p64 {
		return f, false
	}

	return f, uint64(f) == uint64(n)
}

// formatInteger renders n in base 10 whatever its width and signedness.
func formatInteger[N constraints.Integer](n N) string {
	if n < 0 {
		return strconv.FormatInt(int64(n), 10)
	}

	return strconv.FormatUint(uint64(n), 10)
}

// parseNumber accepts Go float syntax plus the ECMAScript spellings
// "Infinity" and "-Infinity" produced by FormatNumber.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		// Out-of-range input parses to ±Inf, which Cast then rejects.
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return x, true
		}
		return 0, false
	}

	return x, true
}
