// SPDX-License-Identifier: MIT
// Package: refined
//
// arithmetic.go - the saturating arithmetic kernel.
//
// Every operator computes its IEEE-754 result in the unconstrained float64
// domain and routes it through Clamp: overflow saturates at the bounds,
// fractional results of integer domains round, zero results of zero-free
// domains move next to zero. Operators never fail and never panic.

package refined

import "math"

// Add returns Clamp(a + b).
func (k *Kernel) Add(a, b float64) float64 { return k.Clamp(a + b) }

// Sub returns Clamp(a - b).
func (k *Kernel) Sub(a, b float64) float64 { return k.Clamp(a - b) }

// Mul returns Clamp(a * b).
func (k *Kernel) Mul(a, b float64) float64 { return k.Clamp(a * b) }

// Div returns Clamp(⌊a / b⌋) for integer domains and Clamp(a / b) for float
// domains.
//
// Precondition: b ≠ 0. The typed Div enforces it through the divisor's
// domain type; the kernel does not re-check. A zero divisor still yields a
// member (±Inf saturates, NaN maps to Clamp(0)).
func (k *Kernel) Div(a, b float64) float64 {
	q := a / b
	if k.integral {
		q = math.Floor(q)
	}

	return k.Clamp(q)
}

// Pow returns Clamp(a ** b).
func (k *Kernel) Pow(a, b float64) float64 { return k.Clamp(math.Pow(a, b)) }

// Abs returns Clamp(|a|).
func (k *Kernel) Abs(a float64) float64 { return k.Clamp(math.Abs(a)) }

// Min returns the smallest argument, re-clamped.
// The signature makes the argument list non-empty.
func (k *Kernel) Min(first float64, rest ...float64) float64 {
	m := first
	for _, x := range rest {
		m = math.Min(m, x)
	}

	return k.Clamp(m)
}

// Max returns the largest argument, re-clamped.
// The signature makes the argument list non-empty.
func (k *Kernel) Max(first float64, rest ...float64) float64 {
	m := first
	for _, x := range rest {
		m = math.Max(m, x)
	}

	return k.Clamp(m)
}

// MinOf is Min over a slice whose length is runtime data.
// Returns ErrEmptyArgs when xs is empty.
func (k *Kernel) MinOf(xs ...float64) (float64, error) {
	if len(xs) == 0 {
		return 0, refinedErrorf("MinOf", ErrEmptyArgs)
	}

	return k.Min(xs[0], xs[1:]...), nil
}

// MaxOf is Max over a slice whose length is runtime data.
// Returns ErrEmptyArgs when xs is empty.
func (k *Kernel) MaxOf(xs ...float64) (float64, error) {
	if len(xs) == 0 {
		return 0, refinedErrorf("MaxOf", ErrEmptyArgs)
	}

	return k.Max(xs[0], xs[1:]...), nil
}
