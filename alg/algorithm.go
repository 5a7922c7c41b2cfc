package alg

import "fmt"

// Algorithm is an ordered sequence of moves.
//
// The zero value is the empty sequence and is ready to use. Methods never
// mutate their receiver; transformations return a new Algorithm.
type Algorithm struct {
	moves []Move
}

// New builds an Algorithm from the given moves. Moves with a non-positive
// amount are rejected.
func New(moves ...Move) (*Algorithm, error) {
	for _, m := range moves {
		if m.Amount < 1 {
			return nil, fmt.Errorf("%w: move %s has amount %d", ErrSyntax, m.Dir, m.Amount)
		}
	}
	cp := make([]Move, len(moves))
	copy(cp, moves)
	return &Algorithm{moves: cp}, nil
}

// Moves returns a copy of the move list.
func (a *Algorithm) Moves() []Move {
	cp := make([]Move, len(a.moves))
	copy(cp, a.moves)
	return cp
}

// Len returns the length of the algorithm under the given metric.
// Complexity: O(n) in the number of moves.
func (a *Algorithm) Len(metric Metric) int {
	if metric == MTM {
		return a.LenMTM()
	}
	return a.LenSTM()
}

// LenSTM returns the number of single-tile moves: the sum of all amounts.
func (a *Algorithm) LenSTM() int {
	n := 0
	for _, m := range a.moves {
		n += m.Amount
	}
	return n
}

// LenMTM returns the number of multi-tile moves: the number of maximal
// runs of same-direction moves.
func (a *Algorithm) LenMTM() int {
	return len(a.runs())
}

// runs merges adjacent same-direction moves into single moves.
func (a *Algorithm) runs() []Move {
	var out []Move
	for _, m := range a.moves {
		if n := len(out); n > 0 && out[n-1].Dir == m.Dir {
			out[n-1].Amount += m.Amount
			continue
		}
		out = append(out, m)
	}
	return out
}

// Inverse returns the algorithm that undoes this one: the moves in reverse
// order, each in the opposite direction. Complexity: O(n).
func (a *Algorithm) Inverse() *Algorithm {
	inv := make([]Move, len(a.moves))
	for i, m := range a.moves {
		inv[len(a.moves)-1-i] = Move{Dir: m.Dir.Opposite(), Amount: m.Amount}
	}
	return &Algorithm{moves: inv}
}

// Transpose returns the algorithm mirrored across the main diagonal
// (U↔L, D↔R). Applying it to a transposed state reproduces the transposed
// result of the original.
func (a *Algorithm) Transpose() *Algorithm {
	out := make([]Move, len(a.moves))
	for i, m := range a.moves {
		out[i] = Move{Dir: m.Dir.Transpose(), Amount: m.Amount}
	}
	return &Algorithm{moves: out}
}

// Concat joins any number of algorithms into one, left to right.
func Concat(algs ...*Algorithm) *Algorithm {
	var moves []Move
	for _, a := range algs {
		moves = append(moves, a.moves...)
	}
	return &Algorithm{moves: moves}
}

// Simplify cancels and merges adjacent same-axis moves until no further
// reduction is possible: same-direction neighbours merge, opposite
// directions cancel. The result has no two adjacent moves on the same
// axis. Complexity: O(n).
func (a *Algorithm) Simplify() *Algorithm {
	var stack []Move
	for _, m := range a.moves {
		cur := m
		for cur.Amount > 0 && len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.Dir == cur.Dir {
				top.Amount += cur.Amount
				cur.Amount = 0
			} else if top.Dir == cur.Dir.Opposite() {
				switch {
				case top.Amount > cur.Amount:
					top.Amount -= cur.Amount
					cur.Amount = 0
				case top.Amount == cur.Amount:
					stack = stack[:len(stack)-1]
					cur.Amount = 0
				default:
					cur.Amount -= top.Amount
					stack = stack[:len(stack)-1]
					// Retry against the uncovered top of the stack.
				}
			} else {
				break
			}
		}
		if cur.Amount > 0 {
			stack = append(stack, cur)
		}
	}
	return &Algorithm{moves: stack}
}

// Slice extracts the sub-sequence spanning [start, end) measured in the
// given metric's move units. Under STM a multi-tile move may be split at
// the boundary; under MTM whole runs are taken. Returns ErrSliceBounds
// when the range does not fit. Complexity: O(n).
func (a *Algorithm) Slice(metric Metric, start, end int) (*Algorithm, error) {
	if start < 0 || start > end {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrSliceBounds, start, end)
	}
	if metric == MTM {
		runs := a.runs()
		if end > len(runs) {
			return nil, fmt.Errorf("%w: [%d, %d) of %d mtm", ErrSliceBounds, start, end, len(runs))
		}
		out := make([]Move, end-start)
		copy(out, runs[start:end])
		return &Algorithm{moves: out}, nil
	}

	if end > a.LenSTM() {
		return nil, fmt.Errorf("%w: [%d, %d) of %d stm", ErrSliceBounds, start, end, a.LenSTM())
	}
	var out []Move
	pos := 0
	for _, m := range a.moves {
		lo, hi := pos, pos+m.Amount
		pos = hi
		if hi <= start {
			continue
		}
		if lo >= end {
			break
		}
		take := min(hi, end) - max(lo, start)
		if take > 0 {
			out = append(out, Move{Dir: m.Dir, Amount: take})
		}
	}
	return &Algorithm{moves: out}, nil
}

// MinApplicableSize returns the dimensions of the smallest puzzle whose
// solved state admits this algorithm, and ok=false when no such puzzle
// exists. The blank of a solved puzzle sits in the bottom-right corner, so
// the running displacement of the blank must stay non-positive on both
// axes; the minimal size is then the bounding box of the blank's walk.
// The empty algorithm touches no tiles and reports ok=false.
func (a *Algorithm) MinApplicableSize() (w, h int, ok bool) {
	if len(a.moves) == 0 {
		return 0, 0, false
	}
	var dx, dy, minDx, minDy int
	for _, m := range a.moves {
		sx, sy := m.Dir.BlankDelta()
		dx += sx * m.Amount
		dy += sy * m.Amount
		if dx > 0 || dy > 0 {
			return 0, 0, false
		}
		minDx = min(minDx, dx)
		minDy = min(minDy, dy)
	}
	return 1 - minDx, 1 - minDy, true
}
