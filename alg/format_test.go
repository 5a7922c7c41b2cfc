package alg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"single move", "R", "R"},
		{"move with amount", "R3", "R3"},
		{"mixed", "R3UL2", "R3UL2"},
		{"long notation", "RRRULL", "R3UL2"},
		{"lowercase", "r3ul2", "R3UL2"},
		{"spaced", "R3 U L2", "R3UL2"},
		{"multi-digit amount", "R12", "R12"},
		{"whitespace only", "  \t ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.Simplify().String())
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown letter", "X"},
		{"zero amount", "R0"},
		{"digit first", "3R"},
		{"trailing garbage", "RU!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			assert.ErrorIs(t, err, ErrSyntax)
		})
	}
}

func TestDisplay(t *testing.T) {
	a := mustParse(t, "R3UL2")

	assert.Equal(t, "R3UL2", a.String())
	assert.Equal(t, "R3 U L2", a.DisplayShortSpaced())
	assert.Equal(t, "RRRULL", a.DisplayLongUnspaced())
	assert.Equal(t, "R R R U L L", a.DisplayLongSpaced())
}

func TestParseStringRoundTrip(t *testing.T) {
	for _, s := range []string{"", "R", "R3UL2", "URDL", "R12U3"} {
		a, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, a.String())
	}
}

func TestParseMetric(t *testing.T) {
	m, err := ParseMetric("stm")
	require.NoError(t, err)
	assert.Equal(t, STM, m)

	m, err = ParseMetric("mtm")
	require.NoError(t, err)
	assert.Equal(t, MTM, m)

	_, err = ParseMetric("qtm")
	assert.ErrorIs(t, err, ErrUnknownMetric)
}

func TestDirection(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		assert.Equal(t, d, d.Opposite().Opposite())
		assert.Equal(t, d, d.Transpose().Transpose())

		dx, dy := d.BlankDelta()
		ox, oy := d.Opposite().BlankDelta()
		assert.Equal(t, -dx, ox)
		assert.Equal(t, -dy, oy)
	}
}
