// Package refined synthesizes saturating operator sets for refined numeric
// domains: bounded, optionally integral, optionally zero-free subsets of the
// float64 line.
//
// 🚀 What is a refined number?
//
//	A refined number is a float64 carried together with a proof that it
//	satisfies a predicate: "lies in [-2^15, 2^15)", "is a positive safe
//	integer", "is a finite, non-zero number". The proof lives in the type
//	(Value[D] with a phantom domain D), so once a value is constructed every
//	function receiving it can rely on the predicate without re-checking.
//
// ✨ Key features:
//   - one factory (New / NewOps) for every domain; a Descriptor is all a
//     domain has to provide
//   - Is / Cast / Clamp agree on the domain boundary by construction
//   - saturating Add, Sub, Mul, Div (floor division on integer domains),
//     Pow, Abs, Min, Max: results are clamped, never wrapped, never failing
//   - uniform bounded random draws with an injectable, mutex-guarded source
//   - exactly one failure mode: *DomainError from Cast
//
// ⚙️ Usage:
//
//	type Percent struct{}
//
//	func (Percent) Descriptor() refined.Descriptor {
//		return refined.Descriptor{
//			Min: 0, Max: 100,
//			Category: refined.SafeInteger,
//			TypeName: "an integer in [0, 100]",
//		}
//	}
//
//	var PercentOps = refined.NewOps[Percent]()
//
//	p, err := PercentOps.Cast(42)      // 42, nil
//	q := PercentOps.Add(p, p)          // 84
//	r := PercentOps.Add(q, q)          // 100, saturated
//	_, err = PercentOps.Cast(101)      // Expected an integer in [0, 100], got: 101
//
// Clamping policy:
//
//	Integer domains round to the nearest integer with ties away from zero
//	(math.Round), then clip to [Min, Max]. Zero-free domains replace an
//	exact zero with the member adjacent to zero on the side the input leaned
//	toward (+1/-1, or ±math.SmallestNonzeroFloat64 for float domains).
//
// Concurrency:
//
//	Kernels and Ops are immutable after construction and safe for concurrent
//	use. The only shared mutable state is the random source, which is always
//	wrapped in a mutex (see WithSource, WithRand, WithSeed).
package refined
