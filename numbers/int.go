// SPDX-License-Identifier: MIT

package numbers

import (
	"math"

	"github.com/katalvlaran/brandnum/refined"
)

// Integers of unbounded magnitude: every integral float64. Above 2^53 not
// every integer is representable, so arithmetic there is approximate.

var (
	intDescriptor = refined.Descriptor{
		Min: -math.MaxFloat64, Max: math.MaxFloat64,
		Category: refined.Integer,
		TypeName: "an integer",
	}
	nonZeroIntDescriptor = refined.Descriptor{
		Min: -math.MaxFloat64, Max: math.MaxFloat64,
		Category:    refined.Integer,
		ExcludeZero: true,
		TypeName:    "a non-zero integer",
	}
	positiveIntDescriptor = refined.Descriptor{
		Min: 1, Max: math.MaxFloat64,
		Category: refined.Integer,
		TypeName: "a positive integer",
	}
	nonNegativeIntDescriptor = refined.Descriptor{
		Min: 0, Max: math.MaxFloat64,
		Category: refined.Integer,
		TypeName: "a non-negative integer",
	}
)

type (
	IntDomain            struct{}
	NonZeroIntDomain     struct{}
	PositiveIntDomain    struct{}
	NonNegativeIntDomain struct{}
)

func (IntDomain) Descriptor() refined.Descriptor            { return intDescriptor }
func (NonZeroIntDomain) Descriptor() refined.Descriptor     { return nonZeroIntDescriptor }
func (PositiveIntDomain) Descriptor() refined.Descriptor    { return positiveIntDescriptor }
func (NonNegativeIntDomain) Descriptor() refined.Descriptor { return nonNegativeIntDescriptor }

func (NonZeroIntDomain) ExcludesZero()  {}
func (PositiveIntDomain) ExcludesZero() {}

type (
	Int            = refined.Value[IntDomain]
	NonZeroInt     = refined.Value[NonZeroIntDomain]
	PositiveInt    = refined.Value[PositiveIntDomain]
	NonNegativeInt = refined.Value[NonNegativeIntDomain]
)

var (
	IntOps            = refined.NewOps[IntDomain]()
	NonZeroIntOps     = refined.NewOps[NonZeroIntDomain]()
	PositiveIntOps    = refined.NewOps[PositiveIntDomain]()
	NonNegativeIntOps = refined.NewOps[NonNegativeIntDomain]()
)
