// SPDX-License-Identifier: MIT

package numbers

import (
	"math"

	"github.com/katalvlaran/brandnum/refined"
)

var (
	finiteNumberDescriptor = refined.Descriptor{
		Min: -math.MaxFloat64, Max: math.MaxFloat64,
		TypeName: "a finite number",
	}
	nonZeroFiniteNumberDescriptor = refined.Descriptor{
		Min: -math.MaxFloat64, Max: math.MaxFloat64,
		ExcludeZero: true,
		TypeName:    "a non-zero finite number",
	}
	// The smallest subnormal keeps 0 out by bounds.
	positiveFiniteNumberDescriptor = refined.Descriptor{
		Min: math.SmallestNonzeroFloat64, Max: math.MaxFloat64,
		TypeName: "a positive finite number",
	}
	nonNegativeFiniteNumberDescriptor = refined.Descriptor{
		Min: 0, Max: math.MaxFloat64,
		TypeName: "a non-negative finite number",
	}
)

type (
	FiniteNumberDomain            struct{}
	NonZeroFiniteNumberDomain     struct{}
	PositiveFiniteNumberDomain    struct{}
	NonNegativeFiniteNumberDomain struct{}
)

func (FiniteNumberDomain) Descriptor() refined.Descriptor { return finiteNumberDescriptor }
func (NonZeroFiniteNumberDomain) Descriptor() refined.Descriptor {
	return nonZeroFiniteNumberDescriptor
}
func (PositiveFiniteNumberDomain) Descriptor() refined.Descriptor {
	return positiveFiniteNumberDescriptor
}
func (NonNegativeFiniteNumberDomain) Descriptor() refined.Descriptor {
	return nonNegativeFiniteNumberDescriptor
}

func (NonZeroFiniteNumberDomain) ExcludesZero()  {}
func (PositiveFiniteNumberDomain) ExcludesZero() {}

type (
	FiniteNumber            = refined.Value[FiniteNumberDomain]
	NonZeroFiniteNumber     = refined.Value[NonZeroFiniteNumberDomain]
	PositiveFiniteNumber    = refined.Value[PositiveFiniteNumberDomain]
	NonNegativeFiniteNumber = refined.Value[NonNegativeFiniteNumberDomain]
)

var (
	FiniteNumberOps            = refined.NewOps[FiniteNumberDomain]()
	NonZeroFiniteNumberOps     = refined.NewOps[NonZeroFiniteNumberDomain]()
	PositiveFiniteNumberOps    = refined.NewOps[PositiveFiniteNumberDomain]()
	NonNegativeFiniteNumberOps = refined.NewOps[NonNegativeFiniteNumberDomain]()
)
