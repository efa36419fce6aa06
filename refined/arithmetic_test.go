// SPDX-License-Identifier: MIT
package refined_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/brandnum/refined"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestKernel_Arithmetic pins saturating results for every binary operator.
func TestKernel_Arithmetic(t *testing.T) {
	t.Parallel()

	int8K := refined.MustNew(int8Desc)
	int16K := refined.MustNew(int16Desc)
	fin := refined.MustNew(finiteDesc)
	nz := refined.MustNew(nonZeroInt16Desc)

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"int16 add saturates", int16K.Add(32000, 1000), 32767},
		{"int16 sub saturates", int16K.Sub(-32000, 1000), -32768},
		{"int16 add in range", int16K.Add(-5, 12), 7},
		{"int16 mul saturates high", int16K.Mul(300, 300), 32767},
		{"int16 mul saturates low", int16K.Mul(-300, 300), -32768},
		{"int8 div floors", int8K.Div(7, 3), 2},
		{"int8 div floors negative", int8K.Div(-7, 3), -3},
		{"int8 div negative divisor", int8K.Div(7, -3), -3},
		{"int8 div exact", int8K.Div(-9, 3), -3},
		{"int8 div overflow", int8K.Div(-128, -1), 127},
		{"int16 div by zero", int16K.Div(1, 0), 32767},
		{"int16 div by zero negative", int16K.Div(-1, 0), -32768},
		{"int16 zero over zero", int16K.Div(0, 0), 0},
		{"int8 pow saturates", int8K.Pow(2, 7), 127},
		{"int8 pow in range", int8K.Pow(2, 6), 64},
		{"int8 pow rounds", int8K.Pow(2, -1), 1},
		{"int8 pow zero exponent", int8K.Pow(0, 0), 1},
		{"int8 abs saturates", int8K.Abs(-128), 127},
		{"int8 abs", int8K.Abs(-5), 5},
		{"int8 min", int8K.Min(3, -2, 7), -2},
		{"int8 max", int8K.Max(3, -2, 7), 7},
		{"int8 min single", int8K.Min(4), 4},
		{"finite div", fin.Div(1, 4), 0.25},
		{"finite add saturates", fin.Add(math.MaxFloat64, math.MaxFloat64), math.MaxFloat64},
		{"finite mul saturates low", fin.Mul(math.MaxFloat64, -2), -math.MaxFloat64},
		{"finite pow nan", fin.Pow(-8, 1.0/3), 0},
		{"non-zero sub to zero", nz.Sub(5, 5), 1},
		{"non-zero sub negative side", nz.Sub(-5, -4.6), -1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got)
		})
	}
}

// TestKernel_MinOfMaxOf checks the checked variadic forms.
func TestKernel_MinOfMaxOf(t *testing.T) {
	t.Parallel()

	k := refined.MustNew(int16Desc)

	_, err := k.MinOf()
	require.ErrorIs(t, err, refined.ErrEmptyArgs)
	_, err = k.MaxOf()
	require.ErrorIs(t, err, refined.ErrEmptyArgs)

	got, err := k.MinOf(4, 2, 9)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	got, err = k.MaxOf(4, 2, 9)
	require.NoError(t, err)
	assert.Equal(t, 9.0, got)
}
