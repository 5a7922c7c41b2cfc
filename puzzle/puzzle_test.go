package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benwh1/slidy-cli/alg"
)

func mustSize(t *testing.T, w, h int) Size {
	t.Helper()
	s, err := NewSize(w, h)
	require.NoError(t, err)
	return s
}

func mustPuzzle(t *testing.T, s string) *Puzzle {
	t.Helper()
	p, err := Parse(s)
	require.NoError(t, err)
	return p
}

func mustAlg(t *testing.T, s string) *alg.Algorithm {
	t.Helper()
	a, err := alg.Parse(s)
	require.NoError(t, err)
	return a
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input string
		w, h  int
	}{
		{"4", 4, 4},
		{"3x5", 3, 5},
		{" 2x3 ", 2, 3},
		{"10", 10, 10},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s, err := ParseSize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.w, s.W)
			assert.Equal(t, tt.h, s.H)
		})
	}

	for _, input := range []string{"", "0", "-2", "3x0", "3x", "x3", "abc", "3x3x3"} {
		t.Run("invalid "+input, func(t *testing.T) {
			_, err := ParseSize(input)
			assert.ErrorIs(t, err, ErrBadSize)
		})
	}
}

func TestSizeNormalize(t *testing.T) {
	s, transposed := mustSize(t, 4, 2).Normalize()
	assert.Equal(t, Size{W: 2, H: 4}, s)
	assert.True(t, transposed)

	s, transposed = mustSize(t, 2, 4).Normalize()
	assert.Equal(t, Size{W: 2, H: 4}, s)
	assert.False(t, transposed)

	s, transposed = mustSize(t, 3, 3).Normalize()
	assert.Equal(t, Size{W: 3, H: 3}, s)
	assert.False(t, transposed)
}

func TestNewIsSolved(t *testing.T) {
	p := New(mustSize(t, 3, 3))
	assert.True(t, p.IsSolved())
	assert.Equal(t, "1 2 3/4 5 6/7 8 0", p.String())

	x, y := p.BlankPosition()
	assert.Equal(t, 2, x)
	assert.Equal(t, 2, y)
}

func TestParse(t *testing.T) {
	p := mustPuzzle(t, "1 2 3/4 5 6/7 8 0")
	assert.True(t, p.IsSolved())
	assert.Equal(t, Size{W: 3, H: 3}, p.Size())

	// Newlines work as row separators too.
	q := mustPuzzle(t, "1 2 3\n4 5 6\n7 8 0")
	assert.True(t, p.Equal(q))

	// Non-square.
	r := mustPuzzle(t, "3 5/1 4/2 0")
	assert.Equal(t, Size{W: 2, H: 3}, r.Size())
	x, y := r.BlankPosition()
	assert.Equal(t, 1, x)
	assert.Equal(t, 2, y)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"ragged rows", "1 2/3"},
		{"value out of range", "0 1/2 4"},
		{"repeated value", "0 1/1 2"},
		{"negative value", "-1 1/2 0"},
		{"not a number", "1 a/2 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			assert.ErrorIs(t, err, ErrBadState)
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	p := mustPuzzle(t, "8 6 7/2 5 4/3 0 1")
	q := mustPuzzle(t, p.String())
	assert.True(t, p.Equal(q))
}

func TestDisplayGrid(t *testing.T) {
	p := mustPuzzle(t, "1 2 3/4 5 6/7 8 0")
	assert.Equal(t, "1 2 3\n4 5 6\n7 8 0", p.DisplayGrid())

	// Two-digit tiles are right-aligned.
	big := New(mustSize(t, 4, 4))
	assert.Equal(t,
		" 1  2  3  4\n 5  6  7  8\n 9 10 11 12\n13 14 15  0",
		big.DisplayGrid())
}

func TestIsSolvable(t *testing.T) {
	tests := []struct {
		state string
		want  bool
	}{
		{"1 2 3/4 5 6/7 8 0", true},
		{"1 2 3/4 5 6/7 0 8", true},
		{"2 1 3/4 5 6/7 8 0", false},
		{"8 6 7/2 5 4/3 0 1", true},
		{"0 1/2 3", false},
		{"1 2/3 0", true},
	}
	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			assert.Equal(t, tt.want, mustPuzzle(t, tt.state).IsSolvable())
		})
	}
}

func TestApplyMove(t *testing.T) {
	p := New(mustSize(t, 3, 3))

	require.NoError(t, p.ApplyMove(alg.Move{Dir: alg.Right, Amount: 1}))
	assert.Equal(t, "1 2 3/4 5 6/7 0 8", p.String())

	require.NoError(t, p.ApplyMove(alg.Move{Dir: alg.Down, Amount: 1}))
	assert.Equal(t, "1 2 3/4 0 6/7 5 8", p.String())
}

func TestApplyMoveIllegal(t *testing.T) {
	p := New(mustSize(t, 3, 3))

	// The blank is in the bottom-right corner; sliding tiles left or up
	// would push it off the board.
	err := p.ApplyMove(alg.Move{Dir: alg.Left, Amount: 1})
	assert.ErrorIs(t, err, ErrIllegalMove)
	err = p.ApplyMove(alg.Move{Dir: alg.Up, Amount: 1})
	assert.ErrorIs(t, err, ErrIllegalMove)
	err = p.ApplyMove(alg.Move{Dir: alg.Right, Amount: 3})
	assert.ErrorIs(t, err, ErrIllegalMove)

	assert.True(t, p.IsSolved())
}

func TestApplyAlg(t *testing.T) {
	p := New(mustSize(t, 3, 3))
	require.NoError(t, p.ApplyAlg(mustAlg(t, "R2D2")))
	assert.Equal(t, "0 2 3/1 5 6/4 7 8", p.String())
}

func TestApplyAlgStrict(t *testing.T) {
	p := New(mustSize(t, 3, 3))

	// The third R runs off the board; the state must be untouched.
	err := p.ApplyAlg(mustAlg(t, "RRR"))
	assert.ErrorIs(t, err, ErrIllegalMove)
	assert.True(t, p.IsSolved())
}

func TestApplyInverseRestores(t *testing.T) {
	a := mustAlg(t, "RDLURDLURR")
	p := New(mustSize(t, 4, 4))
	require.NoError(t, p.ApplyAlg(a))
	require.NoError(t, p.ApplyAlg(a.Inverse()))
	assert.True(t, p.IsSolved())
}

func TestTranspose(t *testing.T) {
	// The transpose of a solved state is the solved state of the
	// transposed size.
	p := New(mustSize(t, 2, 3))
	assert.Equal(t, "1 2 3/4 5 0", p.Transpose().String())

	// Transposing twice is the identity.
	q := mustPuzzle(t, "8 6 7/2 5 4/3 0 1")
	assert.True(t, q.Equal(q.Transpose().Transpose()))
}

func TestTransposeCommutesWithApply(t *testing.T) {
	a := mustAlg(t, "RDLD")
	p := New(mustSize(t, 2, 3))

	applied := p.Clone()
	require.NoError(t, applied.ApplyAlg(a))

	transposed := p.Transpose()
	require.NoError(t, transposed.ApplyAlg(a.Transpose()))

	assert.True(t, applied.Transpose().Equal(transposed))
}

func TestEmbedInto(t *testing.T) {
	p := mustPuzzle(t, "1 0/3 2")
	target := New(mustSize(t, 3, 3))

	require.NoError(t, p.EmbedInto(target))
	assert.Equal(t, "1 2 3/4 5 0/7 8 6", target.String())
}

func TestEmbedIntoSameSize(t *testing.T) {
	p := mustPuzzle(t, "1 2 3/4 5 6/7 0 8")
	target := New(mustSize(t, 3, 3))

	require.NoError(t, p.EmbedInto(target))
	assert.True(t, target.Equal(p))
}

func TestEmbedIntoErrors(t *testing.T) {
	p := mustPuzzle(t, "1 0/3 2")

	// Target too small.
	small := New(mustSize(t, 1, 1))
	assert.ErrorIs(t, p.EmbedInto(small), ErrEmbed)

	// The bottom-right block of the target holds a tile whose home lies
	// outside it.
	bad := mustPuzzle(t, "0 2 3/4 5 6/7 8 1")
	err := p.EmbedInto(bad)
	assert.ErrorIs(t, err, ErrEmbed)
	assert.Equal(t, "0 2 3/4 5 6/7 8 1", bad.String())
}

func TestCloneIsDeep(t *testing.T) {
	p := New(mustSize(t, 3, 3))
	q := p.Clone()
	require.NoError(t, q.ApplyAlg(mustAlg(t, "R")))
	assert.True(t, p.IsSolved())
	assert.False(t, q.IsSolved())
}

func TestReset(t *testing.T) {
	p := New(mustSize(t, 3, 3))
	require.NoError(t, p.ApplyAlg(mustAlg(t, "RDRU")))
	require.False(t, p.IsSolved())
	p.Reset()
	assert.True(t, p.IsSolved())
}
