// SPDX-License-Identifier: MIT
// Package refined_test: shared fixtures (descriptors, phantom domains, stub
// sources) used across the refined test files.
package refined_test

import (
	"math"

	"github.com/katalvlaran/brandnum/refined"
)

// seedDet is the fixed seed of every reproducible test.
const seedDet int64 = 42

var (
	int8Desc = refined.Descriptor{
		Min: -128, Max: 127, Category: refined.SafeInteger,
		TypeName: "an integer in [-2^7, 2^7)",
	}
	nonZeroInt8Desc = refined.Descriptor{
		Min: -128, Max: 127, Category: refined.SafeInteger, ExcludeZero: true,
		TypeName: "a non-zero integer in [-2^7, 2^7)",
	}
	int16Desc = refined.Descriptor{
		Min: -32768, Max: 32767, Category: refined.SafeInteger,
		TypeName: "an integer in [-2^15, 2^15)",
	}
	nonZeroInt16Desc = refined.Descriptor{
		Min: -32768, Max: 32767, Category: refined.SafeInteger, ExcludeZero: true,
		TypeName: "a non-zero integer in [-2^15, 2^15)",
	}
	uint8Desc = refined.Descriptor{
		Min: 0, Max: 255, Category: refined.SafeInteger,
		TypeName: "a non-negative integer less than 2^8",
	}
	intDesc = refined.Descriptor{
		Min: -math.MaxFloat64, Max: math.MaxFloat64, Category: refined.Integer,
		TypeName: "an integer",
	}
	safeIntDesc = refined.Descriptor{
		Min: refined.MinSafeInteger, Max: refined.MaxSafeInteger, Category: refined.SafeInteger,
		TypeName: "a safe integer",
	}
	positiveSafeIntDesc = refined.Descriptor{
		Min: 1, Max: refined.MaxSafeInteger, Category: refined.SafeInteger,
		TypeName: "a positive safe integer",
	}
	finiteDesc = refined.Descriptor{
		Min: -math.MaxFloat64, Max: math.MaxFloat64, Category: refined.NotInteger,
		TypeName: "a finite number",
	}
	nonZeroFiniteDesc = refined.Descriptor{
		Min: -math.MaxFloat64, Max: math.MaxFloat64, Category: refined.NotInteger, ExcludeZero: true,
		TypeName: "a non-zero finite number",
	}
	positiveFiniteDesc = refined.Descriptor{
		Min: math.SmallestNonzeroFloat64, Max: math.MaxFloat64, Category: refined.NotInteger,
		TypeName: "a positive finite number",
	}
	unitIntervalDesc = refined.Descriptor{
		Min: -1, Max: 1, Category: refined.NotInteger,
		TypeName: "a number in [-1, 1]",
	}
	negativeNonZeroDesc = refined.Descriptor{
		Min: -10, Max: 0, Category: refined.Integer, ExcludeZero: true,
		TypeName: "a negative integer not less than -10",
	}
)

// sweepDescriptors is the domain set every property test runs over.
var sweepDescriptors = []refined.Descriptor{
	int8Desc, nonZeroInt8Desc, int16Desc, nonZeroInt16Desc, uint8Desc,
	intDesc, safeIntDesc, positiveSafeIntDesc,
	finiteDesc, nonZeroFiniteDesc, positiveFiniteDesc,
	unitIntervalDesc, negativeNonZeroDesc,
}

// Phantom domains for the typed API.
type (
	int8Domain        struct{}
	nonZeroInt8Domain struct{}
	int16Domain       struct{}
	safeIntDomain     struct{}
	intDomain         struct{}
	finiteDomain      struct{}
	nonZeroFinite     struct{}
	lyingDomain       struct{} // claims NonZeroDomain while admitting 0
	invalidDomain     struct{}
)

func (int8Domain) Descriptor() refined.Descriptor        { return int8Desc }
func (nonZeroInt8Domain) Descriptor() refined.Descriptor { return nonZeroInt8Desc }
func (nonZeroInt8Domain) ExcludesZero()                  {}
func (int16Domain) Descriptor() refined.Descriptor       { return int16Desc }
func (safeIntDomain) Descriptor() refined.Descriptor     { return safeIntDesc }
func (intDomain) Descriptor() refined.Descriptor         { return intDesc }
func (finiteDomain) Descriptor() refined.Descriptor      { return finiteDesc }
func (nonZeroFinite) Descriptor() refined.Descriptor     { return nonZeroFiniteDesc }
func (nonZeroFinite) ExcludesZero()                      {}
func (lyingDomain) Descriptor() refined.Descriptor       { return int8Desc }
func (lyingDomain) ExcludesZero()                        {}
func (invalidDomain) Descriptor() refined.Descriptor     { return refined.Descriptor{Min: 1, Max: 0, TypeName: "x"} }

// constSource always returns the same draw; it exercises the edges of u.
type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

// specialInputs are the boundary values every sweep includes.
var specialInputs = []float64{
	0, math.Copysign(0, -1), 1, -1, 0.5, -0.5, 1.5, -1.5, 2.5,
	127, 128, -128, -129, 32767, 32768, -32768, -32769,
	refined.MaxSafeInteger, refined.MaxSafeInteger + 1, refined.MinSafeInteger, refined.MinSafeInteger - 1,
	math.MaxFloat64, -math.MaxFloat64, math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64,
	1e21, -1e21, 1e-7,
}
