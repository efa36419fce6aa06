// SPDX-License-Identifier: MIT
package numbers_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/brandnum/numbers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rngSource(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

// TestLookup_CaseInsensitive resolves names regardless of case and padding.
func TestLookup_CaseInsensitive(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"Int16", "int16", "INT16", " Int16 "} {
		k, ok := numbers.Lookup(name)
		require.True(t, ok, name)
		assert.Same(t, numbers.Int16Ops.Kernel(), k)
	}

	k, ok := numbers.Lookup("Int64")
	assert.False(t, ok)
	assert.Nil(t, k)
}

// TestGet_Unknown wraps ErrUnknownDomain.
func TestGet_Unknown(t *testing.T) {
	t.Parallel()

	_, err := numbers.Get("Int128")
	require.ErrorIs(t, err, numbers.ErrUnknownDomain)
	assert.Contains(t, err.Error(), `"Int128"`)

	k, err := numbers.Get("positivesafeint")
	require.NoError(t, err)
	assert.Equal(t, "a positive safe integer", k.Descriptor().TypeName)
}

// TestNames_SortedCopy checks ordering and that callers cannot mutate the registry.
func TestNames_SortedCopy(t *testing.T) {
	t.Parallel()

	names := numbers.Names()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "NonZeroUint32")

	names[0] = "mutated"
	assert.NotEqual(t, "mutated", numbers.Names()[0])
}

// TestDescriptors_MatchNames keeps Descriptors aligned with Names.
func TestDescriptors_MatchNames(t *testing.T) {
	t.Parallel()

	names := numbers.Names()
	entries := numbers.Descriptors()
	require.Len(t, entries, len(names))
	for i, e := range entries {
		assert.Equal(t, names[i], e.Name)
		k, ok := numbers.Lookup(e.Name)
		require.True(t, ok)
		assert.Equal(t, k.Descriptor(), e.Descriptor)
	}
}

// TestRegistry_RandomMembership sweeps every registered kernel with a seeded source.
func TestRegistry_RandomMembership(t *testing.T) {
	t.Parallel()

	for _, name := range numbers.Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			k, err := numbers.Get(name)
			require.NoError(t, err)
			k = k.WithSource(rngSource(int64(len(name))))

			nonZero := k.Descriptor().ExcludeZero || !k.Is(0)
			for i := 0; i < 2000; i++ {
				r := k.Random()
				require.True(t, k.Is(r), "Random()=%v", r)
				if nonZero {
					require.NotZero(t, r)
				}
				require.NotZero(t, k.RandomNonZero())
			}
		})
	}
}
