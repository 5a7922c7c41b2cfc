package solver

import (
	"math"

	"github.com/benwh1/slidy-cli/alg"
	"github.com/benwh1/slidy-cli/puzzle"
)

// Heuristic is an admissible lower bound on the number of single-tile
// moves needed to solve a state.
type Heuristic interface {
	Bound(p *puzzle.Puzzle) int
}

// ManhattanDistance sums, over all tiles, the taxicab distance from each
// tile to its solved position. Admissible for the single-tile-move metric.
type ManhattanDistance struct{}

// Bound implements Heuristic. Complexity: O(n).
func (ManhattanDistance) Bound(p *puzzle.Puzzle) int {
	s := p.Size()
	total := 0
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			v := p.Tile(x, y)
			if v == 0 {
				continue
			}
			hx, hy := (v-1)%s.W, (v-1)/s.W
			total += abs(x-hx) + abs(y-hy)
		}
	}
	return total
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Search is an IDA* solver over single-tile moves. It is optimal under the
// single-tile-move metric for any heuristic that never overestimates.
type Search struct {
	heuristic Heuristic
}

// NewSearch builds a Search around the given heuristic.
func NewSearch(h Heuristic) *Search {
	return &Search{heuristic: h}
}

// Solve returns one optimal single-tile-move solution for the state, or
// ErrUnsolvable when the solved state is unreachable. The input is not
// modified.
func (s *Search) Solve(p *puzzle.Puzzle) (*alg.Algorithm, error) {
	if !p.IsSolvable() {
		return nil, ErrUnsolvable
	}
	work := p.Clone()
	bound := s.heuristic.Bound(work)
	var path []alg.Move
	for {
		found, next := s.dfs(work, 0, bound, &path, false, 0)
		if found {
			return alg.New(path...)
		}
		if next == math.MaxInt {
			return nil, ErrUnsolvable
		}
		bound = next
	}
}

// dfs performs one depth-first pass limited by bound, returning either a
// hit or the smallest f-value that exceeded the bound.
func (s *Search) dfs(p *puzzle.Puzzle, g, bound int, path *[]alg.Move, haveLast bool, last alg.Direction) (bool, int) {
	f := g + s.heuristic.Bound(p)
	if f > bound {
		return false, f
	}
	if p.IsSolved() {
		return true, 0
	}
	next := math.MaxInt
	for d := alg.Up; d <= alg.Right; d++ {
		if haveLast && d == last.Opposite() {
			continue
		}
		m := alg.Move{Dir: d, Amount: 1}
		if !p.CanMove(m) {
			continue
		}
		_ = p.ApplyMove(m)
		*path = append(*path, m)
		found, t := s.dfs(p, g+1, bound, path, true, d)
		if found {
			return true, 0
		}
		*path = (*path)[:len(*path)-1]
		_ = p.ApplyMove(alg.Move{Dir: d.Opposite(), Amount: 1})
		if t < next {
			next = t
		}
	}
	return false, next
}
