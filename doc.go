// Package brandnum is a small toolkit of refined numeric types: numbers that
// carry, in their Go type, a proof of the domain they belong to.
//
// 🚀 What is brandnum?
//
//	One generic factory turns a domain description (bounds, integer
//	category, zero exclusion, message name) into a complete operator set:
//		• Validation and casting with exact failure messages
//		• Clamping with a fixed rounding policy
//		• Saturating add, sub, mul, div, pow, abs, min and max
//		• Bounded, injectable random generation
//
// ✨ Why brandnum?
//
//   - Results never leave their domain: overflow saturates, it never wraps
//   - Division only accepts divisors whose type rules out zero
//   - Immutable operator sets, safe to share between goroutines
//   - Seedable random sources for reproducible tests
//
// Packages:
//
//	refined/      - Descriptor, Kernel (untyped) and Ops[D] (typed) operator sets
//	numbers/      - Int8…Uint32, SafeInt, FiniteNumber and friends, plus a name registry
//	cmd/brandnum/ - command line over the registry
//
// Quick example:
//
//	sum := numbers.Int16Ops.Add(numbers.Int16Ops.MustCast(32000), numbers.Int16Ops.MustCast(1000))
//	fmt.Println(sum) // 32767
//
//	go get github.com/katalvlaran/brandnum
package brandnum
