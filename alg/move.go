package alg

import (
	"fmt"
	"strings"
)

// Direction is the direction tiles travel in a move. The blank always
// travels the opposite way.
type Direction uint8

// The four move directions.
const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the single-letter notation for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "U"
	case Down:
		return "D"
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return "?"
	}
}

// Opposite returns the reverse direction. Complexity: O(1).
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Transpose returns the direction after mirroring the puzzle across its
// main diagonal: U↔L and D↔R.
func (d Direction) Transpose() Direction {
	switch d {
	case Up:
		return Left
	case Left:
		return Up
	case Down:
		return Right
	default:
		return Down
	}
}

// BlankDelta returns the per-step displacement of the blank (in x, y grid
// coordinates with y growing downward) when a move in this direction is
// applied.
func (d Direction) BlankDelta() (dx, dy int) {
	switch d {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return 1, 0
	default:
		return -1, 0
	}
}

// parseDirection maps a notation letter to a Direction.
func parseDirection(r rune) (Direction, bool) {
	switch r {
	case 'U', 'u':
		return Up, true
	case 'D', 'd':
		return Down, true
	case 'L', 'l':
		return Left, true
	case 'R', 'r':
		return Right, true
	default:
		return 0, false
	}
}

// Move is a slide of Amount tiles in direction Dir. Amount is always
// positive.
type Move struct {
	Dir    Direction
	Amount int
}

// String returns the short notation for the move: the direction letter,
// followed by the amount when it is greater than one.
func (m Move) String() string {
	if m.Amount == 1 {
		return m.Dir.String()
	}
	return fmt.Sprintf("%s%d", m.Dir, m.Amount)
}

// longString returns the long notation: the direction letter repeated
// Amount times, joined by sep.
func (m Move) longString(sep string) string {
	parts := make([]string, m.Amount)
	for i := range parts {
		parts[i] = m.Dir.String()
	}
	return strings.Join(parts, sep)
}
