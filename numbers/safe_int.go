// SPDX-License-Identifier: MIT

package numbers

import "github.com/katalvlaran/brandnum/refined"

// Safe integers: exactly representable, |x| ≤ 2^53-1.

var (
	safeIntDescriptor = refined.Descriptor{
		Min: refined.MinSafeInteger, Max: refined.MaxSafeInteger,
		Category: refined.SafeInteger,
		TypeName: "a safe integer",
	}
	nonZeroSafeIntDescriptor = refined.Descriptor{
		Min: refined.MinSafeInteger, Max: refined.MaxSafeInteger,
		Category:    refined.SafeInteger,
		ExcludeZero: true,
		TypeName:    "a non-zero safe integer",
	}
	positiveSafeIntDescriptor = refined.Descriptor{
		Min: 1, Max: refined.MaxSafeInteger,
		Category: refined.SafeInteger,
		TypeName: "a positive safe integer",
	}
	safeUintDescriptor = refined.Descriptor{
		Min: 0, Max: refined.MaxSafeInteger,
		Category: refined.SafeInteger,
		TypeName: "a non-negative safe integer",
	}
)

type (
	SafeIntDomain         struct{}
	NonZeroSafeIntDomain  struct{}
	PositiveSafeIntDomain struct{}
	SafeUintDomain        struct{}
)

func (SafeIntDomain) Descriptor() refined.Descriptor         { return safeIntDescriptor }
func (NonZeroSafeIntDomain) Descriptor() refined.Descriptor  { return nonZeroSafeIntDescriptor }
func (PositiveSafeIntDomain) Descriptor() refined.Descriptor { return positiveSafeIntDescriptor }
func (SafeUintDomain) Descriptor() refined.Descriptor        { return safeUintDescriptor }

func (NonZeroSafeIntDomain) ExcludesZero()  {}
func (PositiveSafeIntDomain) ExcludesZero() {}

type (
	SafeInt         = refined.Value[SafeIntDomain]
	NonZeroSafeInt  = refined.Value[NonZeroSafeIntDomain]
	PositiveSafeInt = refined.Value[PositiveSafeIntDomain]
	SafeUint        = refined.Value[SafeUintDomain]
)

var (
	SafeIntOps         = refined.NewOps[SafeIntDomain]()
	NonZeroSafeIntOps  = refined.NewOps[NonZeroSafeIntDomain]()
	PositiveSafeIntOps = refined.NewOps[PositiveSafeIntDomain]()
	SafeUintOps        = refined.NewOps[SafeUintDomain]()
)
