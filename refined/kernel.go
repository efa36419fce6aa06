// SPDX-License-Identifier: MIT
// Package: refined
//
// kernel.go - the untyped operator set closed over one Descriptor.
//
// A Kernel is the factory's product: validation, casting and clamping on
// raw float64 values. Arithmetic lives in arithmetic.go, random draws in
// random.go. Ops[D] (ops.go) brands a Kernel's results with a domain type.

package refined

import "math"

// Kernel is an immutable operator set for one domain.
// It is safe for concurrent use.
type Kernel struct {
	desc     Descriptor
	lo, hi   float64 // effective bounds: smallest/largest members
	integral bool
	src      Source
	nanImage float64 // Clamp(NaN)
}

// New validates desc and returns its operator set.
//
// Errors: the sentinels of Descriptor.Validate, wrapped with "New".
// Complexity: O(len(opts)).
func New(desc Descriptor, opts ...Option) (*Kernel, error) {
	if err := desc.Validate(); err != nil {
		return nil, refinedErrorf("New", err)
	}

	o := gatherOptions(opts...)
	k := &Kernel{
		desc:     desc,
		integral: desc.Category.integral(),
		src:      o.src,
	}
	k.lo, k.hi = desc.effectiveBounds()
	k.nanImage = k.Clamp(0)

	return k, nil
}

// MustNew is New for package-level declarations; it panics on an invalid
// descriptor (programmer error).
func MustNew(desc Descriptor, opts ...Option) *Kernel {
	k, err := New(desc, opts...)
	if err != nil {
		panic(err)
	}

	return k
}

// WithSource returns a copy of k drawing random values from src.
// Panics on nil, like the WithSource option.
func (k *Kernel) WithSource(src Source) *Kernel {
	o := gatherOptions(WithSource(src))
	cp := *k
	cp.src = o.src

	return &cp
}

// Descriptor returns the domain description.
func (k *Kernel) Descriptor() Descriptor { return k.desc }

// MinValue returns the smallest member of the domain.
func (k *Kernel) MinValue() float64 { return k.lo }

// MaxValue returns the largest member of the domain.
func (k *Kernel) MaxValue() float64 { return k.hi }

// Is reports whether x is a member of the domain: finite, within the
// bounds, integral as the category demands, and non-zero when zero is
// excluded. Never fails.
// Complexity: O(1).
func (k *Kernel) Is(x float64) bool {
	if !isFinite(x) || x < k.lo || x > k.hi {
		return false
	}
	if k.integral && x != math.Trunc(x) {
		return false
	}
	if k.desc.ExcludeZero && x == 0 {
		return false
	}

	return true
}

// Cast returns x unchanged when it is a member of the domain, and a
// *DomainError otherwise. It is the only failing operation.
// Negative zero is returned as +0.
// Complexity: O(1).
func (k *Kernel) Cast(x float64) (float64, error) {
	if !k.Is(x) {
		return 0, newDomainError(k.desc.TypeName, x)
	}
	if x == 0 {
		return 0, nil
	}

	return x, nil
}

// Parse reads a decimal number and casts it. Unparsable text fails with a
// *DomainError whose Got is the raw input.
func (k *Kernel) Parse(s string) (float64, error) {
	x, ok := parseNumber(s)
	if !ok {
		return 0, &DomainError{TypeName: k.desc.TypeName, Value: math.NaN(), Got: s}
	}

	return k.Cast(x)
}

// Clamp maps any x into the domain.
//
// Implementation:
//   - Stage 1: integer categories round to nearest, ties away from zero.
//   - Stage 2: clip to [MinValue, MaxValue]; ±Inf land on the bounds.
//   - Stage 3: a zero result in a zero-free domain becomes the member next
//     to zero on the side x leaned toward (x < 0 ⇒ negative, else positive).
//   - Stage 4: -0 normalizes to +0. NaN maps to Clamp(0).
//
// Guarantees: Is(Clamp(x)) and Clamp(Clamp(x)) == Clamp(x) for all x.
// Complexity: O(1).
func (k *Kernel) Clamp(x float64) float64 {
	if math.IsNaN(x) {
		return k.nanImage
	}

	r := x
	if k.integral {
		r = math.Round(r)
	}
	if r < k.lo {
		r = k.lo
	} else if r > k.hi {
		r = k.hi
	}

	if r == 0 {
		if k.desc.ExcludeZero {
			return k.adjacentToZero(x < 0)
		}
		return 0
	}

	return r
}

// adjacentToZero returns the member closest to zero on the preferred side,
// falling back to the other side when the preferred one lies outside the
// bounds. Only meaningful when 0 ∈ [lo, hi].
func (k *Kernel) adjacentToZero(negative bool) float64 {
	unit := math.SmallestNonzeroFloat64
	if k.integral {
		unit = 1
	}

	if negative && -unit >= k.lo {
		return -unit
	}
	if unit <= k.hi {
		return unit
	}

	return -unit
}
