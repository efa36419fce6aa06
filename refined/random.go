// SPDX-License-Identifier: MIT
// Package: refined
//
// random.go - bounded uniform draws and the guarded random source.
//
// Goals:
//   - Determinism on demand: WithSeed/WithStream ⇒ identical draws across runs.
//   - Safety: every source sits behind a mutex; math/rand.Rand is NOT
//     goroutine-safe on its own.
//   - Totality: every draw is routed through Clamp, so results are members
//     of the domain whatever the source returns.
//
// Integer draws use floor(lo + u·(hi−lo+1)) capped at hi. When hi−lo+1 is
// not exactly representable, the overflow-free affine form lo·(1−u) + hi·u
// is floored instead.

package refined

import (
	crand "crypto/rand"
	"encoding/binary"
	"math"
	"math/rand"
	"sync"
)

// maxNonZeroDraws bounds the rejection loop of non-zero float draws. A zero
// draw has probability ~2^-53 per attempt, so the fallback is unreachable in
// practice; it only guarantees termination for adversarial sources.
const maxNonZeroDraws = 64

// exactSpan is the largest count of integers a single float64 draw can
// address without rounding.
const exactSpan = 1 << 53

// Source yields uniform float64 values in [0, 1).
// *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// lockedSource serializes access to a Source.
type lockedSource struct {
	mu  sync.Mutex
	src Source
}

// Float64 implements Source.
func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.src.Float64()
}

// guard wraps src in a lockedSource unless it already is one.
func guard(src Source) Source {
	if ls, ok := src.(*lockedSource); ok {
		return ls
	}

	return &lockedSource{src: src}
}

// defaultSource is shared by every operator set built without a source option.
var defaultSource Source = guard(rand.New(rand.NewSource(cryptoSeed())))

// cryptoSeed reads a high-entropy seed from crypto/rand.
// Falls back to DefaultSeed when the system entropy pool is unavailable.
func cryptoSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return DefaultSeed
	}

	return int64(binary.LittleEndian.Uint64(b[:]))
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// (SplitMix64 finalizer; small input changes give well-spread outputs).
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Random draws uniformly from the whole domain.
// Zero-free domains draw from the domain minus zero (see RandomNonZero).
// Complexity: O(1).
func (k *Kernel) Random() float64 {
	if k.desc.ExcludeZero {
		return k.RandomNonZero()
	}

	return k.draw(k.lo, k.hi)
}

// RandomBetween draws uniformly from [lo, hi] ∩ domain.
// lo and hi are clamped into the domain first and swapped when lo > hi.
// Complexity: O(1).
func (k *Kernel) RandomBetween(lo, hi float64) float64 {
	lo, hi = k.Clamp(lo), k.Clamp(hi)
	if lo > hi {
		lo, hi = hi, lo
	}
	if k.desc.ExcludeZero {
		return k.nonZeroDraw(lo, hi)
	}

	return k.draw(lo, hi)
}

// RandomNonZero draws uniformly from the domain minus zero. It never
// returns 0; Validate guarantees the domain has a non-zero member.
// Complexity: O(1) for integer domains with an exact span, expected O(1)
// otherwise.
func (k *Kernel) RandomNonZero() float64 {
	return k.nonZeroDraw(k.lo, k.hi)
}

// draw returns a clamped uniform draw from [lo, hi]; lo ≤ hi are members.
func (k *Kernel) draw(lo, hi float64) float64 {
	u := k.src.Float64()
	if !k.integral {
		return k.Clamp(between(affine(lo, hi, u), lo, hi))
	}

	span := hi - lo + 1
	if span <= exactSpan {
		r := math.Floor(lo + u*span)
		if r > hi { // u rounding up to 1 in lo + u·span
			r = hi
		}
		return k.Clamp(r)
	}

	return k.Clamp(between(math.Floor(affine(lo, hi, u)), lo, hi))
}

// nonZeroDraw returns a uniform non-zero member of [lo, hi].
func (k *Kernel) nonZeroDraw(lo, hi float64) float64 {
	if lo > 0 || hi < 0 {
		return k.draw(lo, hi)
	}
	if lo == 0 && hi == 0 {
		// Validate rejects {0} domains; kept so the draw stays total.
		return k.adjacentToZero(false)
	}

	// Integer domain, zero inside [lo, hi]: draw one of the hi−lo non-zero
	// members directly by shifting non-negative draws past zero.
	if k.integral && hi-lo <= exactSpan {
		u := k.src.Float64()
		r := math.Floor(lo + u*(hi-lo))
		if r > hi-1 {
			r = hi - 1
		}
		if r >= 0 {
			r++
		}
		return k.Clamp(r)
	}

	for i := 0; i < maxNonZeroDraws; i++ {
		if r := k.draw(lo, hi); r != 0 {
			return r
		}
	}

	return k.adjacentToZero(false)
}

// affine maps u ∈ [0, 1) onto [lo, hi] without overflowing when hi−lo does.
func affine(lo, hi, u float64) float64 {
	if span := hi - lo; !math.IsInf(span, 0) {
		return lo + u*span
	}

	return lo*(1-u) + hi*u
}

// between pins r into [lo, hi], absorbing one-ulp rounding of affine.
func between(r, lo, hi float64) float64 {
	return math.Min(math.Max(r, lo), hi)
}
