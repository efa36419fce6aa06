// SPDX-License-Identifier: MIT

// Package numbers instantiates the refined operator factory for the common
// numeric domains.
//
// Every domain comes as three declarations:
//
//	type Int16Domain struct{}                          // phantom domain
//	type Int16 = refined.Value[Int16Domain]             // branded value
//	var  Int16Ops = refined.NewOps[Int16Domain]()       // operator set
//
// Families:
//
//	Int, NonZeroInt, PositiveInt, NonNegativeInt           integers, unbounded magnitude
//	SafeInt, NonZeroSafeInt, PositiveSafeInt, SafeUint     |x| ≤ 2^53-1
//	Int8/16/32, NonZeroInt8/16/32, PositiveInt8/16/32      two's-complement ranges
//	Uint8/16/32, NonZeroUint8/16/32                        unsigned ranges
//	FiniteNumber, NonZeroFiniteNumber,
//	PositiveFiniteNumber, NonNegativeFiniteNumber          floats
//
// Domains that cannot hold 0 (the NonZero* and Positive* families) implement
// refined.NonZeroDomain, so their values are accepted as divisors:
//
//	q := refined.Div(numbers.Int8Ops, a, numbers.NonZeroInt8Ops.MustCast(3))
//
// The registry (Lookup, Get, Names, Descriptors) exposes the untyped kernels
// by name for tooling that picks a domain at runtime, such as cmd/brandnum.
//
// All operator sets are package-level, immutable and safe for concurrent
// use. They draw random values from the shared crypto-seeded source; use
// Ops.WithSource for reproducible sequences.
package numbers
