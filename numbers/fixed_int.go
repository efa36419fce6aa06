// SPDX-License-Identifier: MIT

package numbers

import (
	"math"

	"github.com/katalvlaran/brandnum/refined"
)

// Fixed-width signed integers. Bounds are those of the Go types int8, int16
// and int32; every member is exact.

var (
	int8Descriptor         = signed(math.MinInt8, math.MaxInt8, false, "an integer in [-2^7, 2^7)")
	nonZeroInt8Descriptor  = signed(math.MinInt8, math.MaxInt8, true, "a non-zero integer in [-2^7, 2^7)")
	positiveInt8Descriptor = signed(1, math.MaxInt8, false, "a positive integer in [1, 2^7)")

	int16Descriptor         = signed(math.MinInt16, math.MaxInt16, false, "an integer in [-2^15, 2^15)")
	nonZeroInt16Descriptor  = signed(math.MinInt16, math.MaxInt16, true, "a non-zero integer in [-2^15, 2^15)")
	positiveInt16Descriptor = signed(1, math.MaxInt16, false, "a positive integer in [1, 2^15)")

	int32Descriptor         = signed(math.MinInt32, math.MaxInt32, false, "an integer in [-2^31, 2^31)")
	nonZeroInt32Descriptor  = signed(math.MinInt32, math.MaxInt32, true, "a non-zero integer in [-2^31, 2^31)")
	positiveInt32Descriptor = signed(1, math.MaxInt32, false, "a positive integer in [1, 2^31)")
)

// signed describes a SafeInteger range [lo, hi].
func signed(lo, hi float64, nonZero bool, name string) refined.Descriptor {
	return refined.Descriptor{
		Min:         lo,
		Max:         hi,
		Category:    refined.SafeInteger,
		ExcludeZero: nonZero,
		TypeName:    name,
	}
}

type (
	Int8Domain          struct{}
	NonZeroInt8Domain   struct{}
	PositiveInt8Domain  struct{}
	Int16Domain         struct{}
	NonZeroInt16Domain  struct{}
	PositiveInt16Domain struct{}
	Int32Domain         struct{}
	NonZeroInt32Domain  struct{}
	PositiveInt32Domain struct{}
)

func (Int8Domain) Descriptor() refined.Descriptor          { return int8Descriptor }
func (NonZeroInt8Domain) Descriptor() refined.Descriptor   { return nonZeroInt8Descriptor }
func (PositiveInt8Domain) Descriptor() refined.Descriptor  { return positiveInt8Descriptor }
func (Int16Domain) Descriptor() refined.Descriptor         { return int16Descriptor }
func (NonZeroInt16Domain) Descriptor() refined.Descriptor  { return nonZeroInt16Descriptor }
func (PositiveInt16Domain) Descriptor() refined.Descriptor { return positiveInt16Descriptor }
func (Int32Domain) Descriptor() refined.Descriptor         { return int32Descriptor }
func (NonZeroInt32Domain) Descriptor() refined.Descriptor  { return nonZeroInt32Descriptor }
func (PositiveInt32Domain) Descriptor() refined.Descriptor { return positiveInt32Descriptor }

func (NonZeroInt8Domain) ExcludesZero()   {}
func (PositiveInt8Domain) ExcludesZero()  {}
func (NonZeroInt16Domain) ExcludesZero()  {}
func (PositiveInt16Domain) ExcludesZero() {}
func (NonZeroInt32Domain) ExcludesZero()  {}
func (PositiveInt32Domain) ExcludesZero() {}

type (
	Int8          = refined.Value[Int8Domain]
	NonZeroInt8   = refined.Value[NonZeroInt8Domain]
	PositiveInt8  = refined.Value[PositiveInt8Domain]
	Int16         = refined.Value[Int16Domain]
	NonZeroInt16  = refined.Value[NonZeroInt16Domain]
	PositiveInt16 = refined.Value[PositiveInt16Domain]
	Int32         = refined.Value[Int32Domain]
	NonZeroInt32  = refined.Value[NonZeroInt32Domain]
	PositiveInt32 = refined.Value[PositiveInt32Domain]
)

var (
	Int8Ops          = refined.NewOps[Int8Domain]()
	NonZeroInt8Ops   = refined.NewOps[NonZeroInt8Domain]()
	PositiveInt8Ops  = refined.NewOps[PositiveInt8Domain]()
	Int16Ops         = refined.NewOps[Int16Domain]()
	NonZeroInt16Ops  = refined.NewOps[NonZeroInt16Domain]()
	PositiveInt16Ops = refined.NewOps[PositiveInt16Domain]()
	Int32Ops         = refined.NewOps[Int32Domain]()
	NonZeroInt32Ops  = refined.NewOps[NonZeroInt32Domain]()
	PositiveInt32Ops = refined.NewOps[PositiveInt32Domain]()
)
