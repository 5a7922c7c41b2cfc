package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankIdentity(t *testing.T) {
	assert.Equal(t, 0, rankPermutation([]int{0}))
	assert.Equal(t, 0, rankPermutation([]int{0, 1, 2, 3}))
	assert.Equal(t, factorials[4]-1, rankPermutation([]int{3, 2, 1, 0}))
}

func TestRankUnrankRoundTrip(t *testing.T) {
	out := make([]int, 4)
	seen := make(map[int]bool)
	for r := 0; r < factorials[4]; r++ {
		unrankPermutation(r, out)
		require.Equal(t, r, rankPermutation(out))

		// Ranks must be distinct permutations.
		key := out[0]<<6 | out[1]<<4 | out[2]<<2 | out[3]
		require.False(t, seen[key])
		seen[key] = true
	}
}

func TestUnrankIsPermutation(t *testing.T) {
	out := make([]int, 6)
	for _, r := range []int{0, 1, 100, 719} {
		unrankPermutation(r, out)
		seen := make([]bool, 6)
		for _, v := range out {
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, 6)
			require.False(t, seen[v])
			seen[v] = true
		}
	}
}
