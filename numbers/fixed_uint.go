// SPDX-License-Identifier: MIT

package numbers

import (
	"math"

	"github.com/katalvlaran/brandnum/refined"
)

// Fixed-width unsigned integers, bounded like uint8, uint16 and uint32.
// The NonZero variants start at 1; zero is excluded by the bounds alone.

var (
	uint8Descriptor         = signed(0, math.MaxUint8, false, "a non-negative integer less than 2^8")
	nonZeroUint8Descriptor  = signed(1, math.MaxUint8, false, "a positive integer less than 2^8")
	uint16Descriptor        = signed(0, math.MaxUint16, false, "a non-negative integer less than 2^16")
	nonZeroUint16Descriptor = signed(1, math.MaxUint16, false, "a positive integer less than 2^16")
	uint32Descriptor        = signed(0, math.MaxUint32, false, "a non-negative integer less than 2^32")
	nonZeroUint32Descriptor = signed(1, math.MaxUint32, false, "a positive integer less than 2^32")
)

type (
	Uint8Domain         struct{}
	NonZeroUint8Domain  struct{}
	Uint16Domain        struct{}
	NonZeroUint16Domain struct{}
	Uint32Domain        struct{}
	NonZeroUint32Domain struct{}
)

func (Uint8Domain) Descriptor() refined.Descriptor         { return uint8Descriptor }
func (NonZeroUint8Domain) Descriptor() refined.Descriptor  { return nonZeroUint8Descriptor }
func (Uint16Domain) Descriptor() refined.Descriptor        { return uint16Descriptor }
func (NonZeroUint16Domain) Descriptor() refined.Descriptor { return nonZeroUint16Descriptor }
func (Uint32Domain) Descriptor() refined.Descriptor        { return uint32Descriptor }
func (NonZeroUint32Domain) Descriptor() refined.Descriptor { return nonZeroUint32Descriptor }

func (NonZeroUint8Domain) ExcludesZero()  {}
func (NonZeroUint16Domain) ExcludesZero() {}
func (NonZeroUint32Domain) ExcludesZero() {}

type (
	Uint8         = refined.Value[Uint8Domain]
	NonZeroUint8  = refined.Value[NonZeroUint8Domain]
	Uint16        = refined.Value[Uint16Domain]
	NonZeroUint16 = refined.Value[NonZeroUint16Domain]
	Uint32        = refined.Value[Uint32Domain]
	NonZeroUint32 = refined.Value[NonZeroUint32Domain]
)

var (
	Uint8Ops         = refined.NewOps[Uint8Domain]()
	NonZeroUint8Ops  = refined.NewOps[NonZeroUint8Domain]()
	Uint16Ops        = refined.NewOps[Uint16Domain]()
	NonZeroUint16Ops = refined.NewOps[NonZeroUint16Domain]()
	Uint32Ops        = refined.NewOps[Uint32Domain]()
	NonZeroUint32Ops = refined.NewOps[NonZeroUint32Domain]()
)
