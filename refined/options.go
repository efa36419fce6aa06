// SPDX-License-Identifier: MIT
// Package: refined
//
// options.go - functional options for New / NewOps.
//
// Contract:
//   • Options are functional (type Option func(*Options)); later options
//     override earlier ones (last-writer-wins).
//   • Option constructors validate and PANIC on meaningless inputs (nil
//     sources). Operators themselves never panic.
//   • Every source handed in is wrapped in a mutex guard, so an operator set
//     stays safe to share across goroutines whatever the caller passes.
//
// AI-Hints:
//   • Prefer WithSeed in tests and examples to lock random outcomes.
//   • Use WithStream to give parallel workers independent, reproducible
//     sources derived from one seed.

package refined

import "math/rand"

// Defaults (single source of truth for zero-value behavior).
const (
	// DefaultSeed is the seed WithSeed substitutes for seed == 0.
	// The value is arbitrary but stable to keep reproducible defaults.
	DefaultSeed int64 = 1
)

// Internal panic messages (no magic strings).
const (
	panicNilSource = "refined: WithSource(nil)"
	panicNilRand   = "refined: WithRand(nil)"
)

// Option customizes a Kernel before it is sealed.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	src Source // never nil after gatherOptions
}

// WithSource draws random values from src.
// Panics on nil. src is wrapped in a mutex guard unless it already is one.
// Complexity: O(1).
func WithSource(src Source) Option {
	if src == nil {
		panic(panicNilSource)
	}
	guarded := guard(src)

	return func(o *Options) { o.src = guarded }
}

// WithRand draws random values from r. Panics on nil.
// r is guarded by a mutex; callers must not keep using r concurrently
// outside the operator set.
// Complexity: O(1).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicNilRand)
	}

	return WithSource(r)
}

// WithSeed creates a deterministic source from seed.
// Policy: seed == 0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return WithSource(rngFromSeed(seed))
}

// WithStream creates a deterministic source for stream number stream,
// derived from seed with a SplitMix64 mix. Distinct streams of one seed are
// decorrelated; the same (seed, stream) pair always yields the same draws.
// Complexity: O(1).
func WithStream(seed int64, stream uint64) Option {
	if seed == 0 {
		seed = DefaultSeed
	}

	return WithSource(rand.New(rand.NewSource(deriveSeed(seed, stream))))
}

// gatherOptions applies opts in order on top of the defaults.
// The default source is the process-wide crypto-seeded source.
func gatherOptions(opts ...Option) Options {
	o := Options{src: defaultSource}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
