// SPDX-License-Identifier: MIT
package numbers_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/brandnum/numbers"
	"github.com/katalvlaran/brandnum/refined"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const maxSafe = refined.MaxSafeInteger

// TestDomains_Table pins bounds, category and message of every domain.
func TestDomains_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		min, max float64
		category refined.Category
		nonZero  bool
		message  string
	}{
		{"Int", -math.MaxFloat64, math.MaxFloat64, refined.Integer, false, "an integer"},
		{"NonZeroInt", -math.MaxFloat64, math.MaxFloat64, refined.Integer, true, "a non-zero integer"},
		{"PositiveInt", 1, math.MaxFloat64, refined.Integer, false, "a positive integer"},
		{"NonNegativeInt", 0, math.MaxFloat64, refined.Integer, false, "a non-negative integer"},
		{"SafeInt", -maxSafe, maxSafe, refined.SafeInteger, false, "a safe integer"},
		{"NonZeroSafeInt", -maxSafe, maxSafe, refined.SafeInteger, true, "a non-zero safe integer"},
		{"PositiveSafeInt", 1, maxSafe, refined.SafeInteger, false, "a positive safe integer"},
		{"SafeUint", 0, maxSafe, refined.SafeInteger, false, "a non-negative safe integer"},
		{"Int8", -128, 127, refined.SafeInteger, false, "an integer in [-2^7, 2^7)"},
		{"NonZeroInt8", -128, 127, refined.SafeInteger, true, "a non-zero integer in [-2^7, 2^7)"},
		{"PositiveInt8", 1, 127, refined.SafeInteger, false, "a positive integer in [1, 2^7)"},
		{"Int16", -32768, 32767, refined.SafeInteger, false, "an integer in [-2^15, 2^15)"},
		{"NonZeroInt16", -32768, 32767, refined.SafeInteger, true, "a non-zero integer in [-2^15, 2^15)"},
		{"PositiveInt16", 1, 32767, refined.SafeInteger, false, "a positive integer in [1, 2^15)"},
		{"Int32", -2147483648, 2147483647, refined.SafeInteger, false, "an integer in [-2^31, 2^31)"},
		{"NonZeroInt32", -2147483648, 2147483647, refined.SafeInteger, true, "a non-zero integer in [-2^31, 2^31)"},
		{"PositiveInt32", 1, 2147483647, refined.SafeInteger, false, "a positive integer in [1, 2^31)"},
		{"Uint8", 0, 255, refined.SafeInteger, false, "a non-negative integer less than 2^8"},
		{"NonZeroUint8", 1, 255, refined.SafeInteger, false, "a positive integer less than 2^8"},
		{"Uint16", 0, 65535, refined.SafeInteger, false, "a non-negative integer less than 2^16"},
		{"NonZeroUint16", 1, 65535, refined.SafeInteger, false, "a positive integer less than 2^16"},
		{"Uint32", 0, 4294967295, refined.SafeInteger, false, "a non-negative integer less than 2^32"},
		{"NonZeroUint32", 1, 4294967295, refined.SafeInteger, false, "a positive integer less than 2^32"},
		{"FiniteNumber", -math.MaxFloat64, math.MaxFloat64, refined.NotInteger, false, "a finite number"},
		{"NonZeroFiniteNumber", -math.MaxFloat64, math.MaxFloat64, refined.NotInteger, true, "a non-zero finite number"},
		{"PositiveFiniteNumber", math.SmallestNonzeroFloat64, math.MaxFloat64, refined.NotInteger, false, "a positive finite number"},
		{"NonNegativeFiniteNumber", 0, math.MaxFloat64, refined.NotInteger, false, "a non-negative finite number"},
	}

	require.Len(t, numbers.Names(), len(tests), "registry and table disagree")

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			k, ok := numbers.Lookup(tc.name)
			require.True(t, ok)

			d := k.Descriptor()
			require.NoError(t, d.Validate())
			assert.Equal(t, tc.min, d.Min)
			assert.Equal(t, tc.max, d.Max)
			assert.Equal(t, tc.category, d.Category)
			assert.Equal(t, tc.nonZero, d.ExcludeZero)
			assert.Equal(t, tc.message, d.TypeName)

			// Bounds are members, except a zero bound of a zero-free domain.
			assert.Equal(t, tc.min != 0 || !tc.nonZero, k.Is(tc.min))
			assert.True(t, k.Is(tc.max))
		})
	}
}

// nonZeroMarker reports whether D carries the divisor marker and whether
// the marker agrees with membership of 0.
func nonZeroMarker[D refined.Domain](t *testing.T, ops *refined.Ops[D]) {
	t.Helper()
	var d D
	_, marked := any(d).(refined.NonZeroDomain)
	assert.Equal(t, !ops.Is(0), marked, "%T", d)
}

// TestDomains_NonZeroMarker checks every zero-free domain is a valid divisor
// type and no domain admitting 0 claims to be.
func TestDomains_NonZeroMarker(t *testing.T) {
	t.Parallel()

	nonZeroMarker(t, numbers.IntOps)
	nonZeroMarker(t, numbers.NonZeroIntOps)
	nonZeroMarker(t, numbers.PositiveIntOps)
	nonZeroMarker(t, numbers.NonNegativeIntOps)
	nonZeroMarker(t, numbers.SafeIntOps)
	nonZeroMarker(t, numbers.NonZeroSafeIntOps)
	nonZeroMarker(t, numbers.PositiveSafeIntOps)
	nonZeroMarker(t, numbers.SafeUintOps)
	nonZeroMarker(t, numbers.Int8Ops)
	nonZeroMarker(t, numbers.NonZeroInt8Ops)
	nonZeroMarker(t, numbers.PositiveInt8Ops)
	nonZeroMarker(t, numbers.Int16Ops)
	nonZeroMarker(t, numbers.NonZeroInt16Ops)
	nonZeroMarker(t, numbers.PositiveInt16Ops)
	nonZeroMarker(t, numbers.Int32Ops)
	nonZeroMarker(t, numbers.NonZeroInt32Ops)
	nonZeroMarker(t, numbers.PositiveInt32Ops)
	nonZeroMarker(t, numbers.Uint8Ops)
	nonZeroMarker(t, numbers.NonZeroUint8Ops)
	nonZeroMarker(t, numbers.Uint16Ops)
	nonZeroMarker(t, numbers.NonZeroUint16Ops)
	nonZeroMarker(t, numbers.Uint32Ops)
	nonZeroMarker(t, numbers.NonZeroUint32Ops)
	nonZeroMarker(t, numbers.FiniteNumberOps)
	nonZeroMarker(t, numbers.NonZeroFiniteNumberOps)
	nonZeroMarker(t, numbers.PositiveFiniteNumberOps)
	nonZeroMarker(t, numbers.NonNegativeFiniteNumberOps)
}

// TestScenarios replays the documented edge results on the concrete types.
func TestScenarios(t *testing.T) {
	t.Parallel()

	i16 := numbers.Int16Ops
	var sum numbers.Int16 = i16.Add(i16.MustCast(32000), i16.MustCast(1000))
	assert.Equal(t, 32767.0, sum.Float64())
	assert.Equal(t, -32768.0, i16.Sub(i16.MustCast(-32000), i16.MustCast(1000)).Float64())

	var nz numbers.NonZeroInt16 = numbers.NonZeroInt16Ops.Clamp(0)
	assert.Equal(t, 1.0, nz.Float64())

	var ps numbers.PositiveSafeInt = numbers.PositiveSafeIntOps.Clamp(maxSafe + 10)
	assert.Equal(t, float64(maxSafe), ps.Float64())

	_, err := numbers.IntOps.Cast(1.2)
	require.ErrorIs(t, err, refined.ErrDomainViolation)
	assert.EqualError(t, err, "Expected an integer, got: 1.2")

	i8 := numbers.Int8Ops
	three := numbers.NonZeroInt8Ops.MustCast(3)
	assert.Equal(t, int64(2), refined.Div(i8, i8.MustCast(7), three).Int64())
	assert.Equal(t, int64(-3), refined.Div(i8, i8.MustCast(-7), three).Int64())

	_, err = numbers.Int16Ops.Cast(40000)
	assert.EqualError(t, err, "Expected an integer in [-2^15, 2^15), got: 40000")
}

// TestCrossDomainDivisors divides by values of other zero-free domains.
func TestCrossDomainDivisors(t *testing.T) {
	t.Parallel()

	u8 := numbers.Uint8Ops
	q := refined.Div(u8, u8.MustCast(200), numbers.NonZeroUint8Ops.MustCast(3))
	assert.Equal(t, "66", q.String())

	f := numbers.FiniteNumberOps
	r := refined.Div(f, f.MustCast(1), numbers.PositiveFiniteNumberOps.MustCast(8))
	assert.Equal(t, 0.125, r.Float64())

	s := numbers.SafeIntOps
	big := refined.Div(s, s.MustCast(-maxSafe), numbers.PositiveSafeIntOps.MustCast(1))
	assert.Equal(t, float64(-maxSafe), big.Float64())
}

// TestRandom_Typed draws from a few concrete domains with a seeded source.
func TestRandom_Typed(t *testing.T) {
	t.Parallel()

	ops := numbers.NonZeroInt32Ops.WithSource(rngSource(7))
	for i := 0; i < 1000; i++ {
		v := ops.Random()
		require.False(t, v.IsZero())
		require.True(t, ops.Is(v.Float64()))
	}

	u := numbers.Uint16Ops.WithSource(rngSource(7))
	lo, hi := u.MustCast(10), u.MustCast(20)
	for i := 0; i < 1000; i++ {
		v := u.RandomBetween(hi, lo)
		require.GreaterOrEqual(t, v.Float64(), 10.0)
		require.LessOrEqual(t, v.Float64(), 20.0)
	}
}
