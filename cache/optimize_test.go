package cache

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benwh1/slidy-cli/alg"
	"github.com/benwh1/slidy-cli/internal"
	"github.com/benwh1/slidy-cli/puzzle"
)

func mustAlg(t *testing.T, s string) *alg.Algorithm {
	t.Helper()
	a, err := alg.Parse(s)
	require.NoError(t, err)
	return a
}

// assertSameEffect verifies that two algorithms produce the same state
// when applied to the solved puzzle of the given size.
func assertSameEffect(t *testing.T, a, b *alg.Algorithm, size puzzle.Size) {
	t.Helper()
	p, q := puzzle.New(size), puzzle.New(size)
	require.NoError(t, p.ApplyAlg(a))
	require.NoError(t, q.ApplyAlg(b))
	assert.True(t, p.Equal(q), "%s and %s disagree on %s", a, b, size)
}

func TestOptimizeWindowValidation(t *testing.T) {
	c, _ := newTestCache(t)
	a := mustAlg(t, "RDLU")

	for _, window := range []int{0, -1} {
		_, err := c.Optimize(a, alg.STM, window)
		assert.True(t, internal.IsValidationError(err))
	}
}

func TestOptimizeEmpty(t *testing.T) {
	c, _ := newTestCache(t)
	got, err := c.Optimize(mustAlg(t, ""), alg.STM, 1)
	require.NoError(t, err)
	assert.Equal(t, "", got.String())
}

func TestOptimizeSimplifiesFirst(t *testing.T) {
	c, _ := newTestCache(t)

	// Cancelling moves vanish before any window is examined.
	got, err := c.Optimize(mustAlg(t, "RLRL"), alg.STM, 2)
	require.NoError(t, err)
	assert.Equal(t, "", got.String())

	got, err = c.Optimize(mustAlg(t, "RRUDL"), alg.STM, 2)
	require.NoError(t, err)
	assert.Equal(t, "R", got.String())
}

func TestOptimizeAlreadyOptimal(t *testing.T) {
	c, _ := newTestCache(t)

	for _, s := range []string{"R", "RD", "RDLU"} {
		a := mustAlg(t, s)
		got, err := c.Optimize(a, alg.STM, a.LenSTM())
		require.NoError(t, err)
		assert.Equal(t, s, got.String())
	}
}

func TestOptimizeSkipsUnanchoredWindows(t *testing.T) {
	c, _ := newTestCache(t)

	// No window of this sequence applies to any solved puzzle; the
	// cursor slides over all of them and the input survives.
	a := mustAlg(t, "UR")
	got, err := c.Optimize(a, alg.STM, 2)
	require.NoError(t, err)
	assert.Equal(t, "UR", got.String())
}

func TestOptimizeReduces(t *testing.T) {
	c, _ := newTestCache(t)

	// Eight moves walking the blank in a circle collapse to the four
	// moves going the other way around.
	a := mustAlg(t, "RDLURDLURR")
	got, err := c.Optimize(a, alg.STM, 8)
	require.NoError(t, err)
	assert.Less(t, got.LenSTM(), a.LenSTM())

	size := puzzle.Size{W: 4, H: 4}
	assertSameEffect(t, a, got, size)
}

func TestOptimizeReducesMTM(t *testing.T) {
	c, _ := newTestCache(t)

	a := mustAlg(t, "RDLURDLURR")
	got, err := c.Optimize(a, alg.MTM, 8)
	require.NoError(t, err)
	assert.Less(t, got.LenMTM(), a.LenMTM())
	assertSameEffect(t, a, got, puzzle.Size{W: 4, H: 4})
}

func TestOptimizeNeverLengthens(t *testing.T) {
	c, _ := newTestCache(t)

	for _, s := range []string{"R", "RDLU", "RDLURDLURR", "R2D2L2U2"} {
		a := mustAlg(t, s)
		for _, window := range []int{1, 2, 3, 4} {
			got, err := c.Optimize(a, alg.STM, window)
			require.NoError(t, err)
			assert.LessOrEqual(t, got.LenSTM(), a.LenSTM(), "alg %s window %d", s, window)
		}
	}
}

func TestOptimizeRepeatedApplication(t *testing.T) {
	c, _ := newTestCache(t)

	// A second pass may shrink further (the splice can create new
	// cancellations) but never grows and never changes the effect.
	a := mustAlg(t, "RDLURDLURR")
	once, err := c.Optimize(a, alg.STM, 8)
	require.NoError(t, err)
	twice, err := c.Optimize(once, alg.STM, 8)
	require.NoError(t, err)
	assert.LessOrEqual(t, twice.LenSTM(), once.LenSTM())
	assertSameEffect(t, once, twice, puzzle.Size{W: 4, H: 4})
}

func TestOptimizeRemovesDetours(t *testing.T) {
	c, _ := newTestCache(t)

	// Sixty moves circling the bottom-right corner of a 4x4. Simplify
	// alone cannot shorten this (no two adjacent moves share an axis),
	// but every ten-move window winds most of the way around a 2x2
	// orbit and re-solves in two moves.
	size := puzzle.Size{W: 4, H: 4}
	a := mustAlg(t, strings.Repeat("RDLU", 15))
	require.Equal(t, 60, a.LenSTM())
	require.Equal(t, a.LenSTM(), a.Simplify().LenSTM())

	got, err := c.Optimize(a, alg.STM, 10)
	require.NoError(t, err)
	assert.Less(t, got.LenSTM(), 60)
	assertSameEffect(t, a, got, size)
}

func TestOptimizeLongRandomWalk(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long optimizer run in short mode")
	}
	c, _ := newTestCache(t)

	// A fixed random walk on the 4x4, sixty single-tile moves.
	r := rand.New(rand.NewPCG(7, 11))
	size := puzzle.Size{W: 4, H: 4}
	p := puzzle.New(size)
	var moves []alg.Move
	for len(moves) < 60 {
		m := alg.Move{Dir: alg.Direction(r.IntN(4)), Amount: 1}
		if !p.CanMove(m) {
			continue
		}
		require.NoError(t, p.ApplyMove(m))
		moves = append(moves, m)
	}
	a, err := alg.New(moves...)
	require.NoError(t, err)

	got, err := c.Optimize(a, alg.STM, 6)
	require.NoError(t, err)
	assert.LessOrEqual(t, got.LenSTM(), a.LenSTM())
	assertSameEffect(t, a, got, size)
}
