package puzzle

import (
	"math/rand/v2"

	"github.com/benwh1/slidy-cli/alg"
)

// Scrambler randomizes a puzzle state in place.
type Scrambler interface {
	Scramble(p *Puzzle, r *rand.Rand)
}

// RandomState scrambles to a uniformly random solvable state.
type RandomState struct{}

// Scramble shuffles the tiles and, when the shuffle lands on the
// unsolvable coset, swaps two non-blank tiles to restore solvability.
func (RandomState) Scramble(p *Puzzle, r *rand.Rand) {
	r.Shuffle(len(p.tiles), func(i, j int) {
		p.tiles[i], p.tiles[j] = p.tiles[j], p.tiles[i]
	})
	for i, v := range p.tiles {
		if v == 0 {
			p.blank = i
			break
		}
	}
	if !p.IsSolvable() {
		i, j := 0, 1
		if p.tiles[i] == 0 {
			i = 2
		} else if p.tiles[j] == 0 {
			j = 2
		}
		p.tiles[i], p.tiles[j] = p.tiles[j], p.tiles[i]
	}
}

// RandomMoves scrambles by applying a fixed number of random single-tile
// moves.
type RandomMoves struct {
	// Moves is the number of moves to generate.
	Moves int
	// AllowBacktracking permits a move that immediately undoes the
	// previous one.
	AllowBacktracking bool
	// AllowIllegalMoves counts moves that slide off the board instead of
	// redrawing them; such moves leave the state unchanged.
	AllowIllegalMoves bool
}

// Scramble applies the configured random walk.
func (s RandomMoves) Scramble(p *Puzzle, r *rand.Rand) {
	if p.size.Area() < 2 {
		return
	}
	last := alg.Direction(0)
	haveLast := false
	for i := 0; i < s.Moves; i++ {
		m := alg.Move{Dir: alg.Direction(r.IntN(4)), Amount: 1}
		if !s.AllowBacktracking && haveLast && m.Dir == last.Opposite() {
			// On 1xN boards the backtrack can be the only legal move;
			// redrawing then never terminates, so take it instead.
			if s.AllowIllegalMoves || hasOtherLegalMove(p, m.Dir) {
				i--
				continue
			}
		}
		if !p.CanMove(m) {
			if !s.AllowIllegalMoves {
				i--
			}
			continue
		}
		_ = p.ApplyMove(m)
		last = m.Dir
		haveLast = true
	}
}

// hasOtherLegalMove reports whether any direction besides skip is legal.
func hasOtherLegalMove(p *Puzzle, skip alg.Direction) bool {
	for dir := alg.Up; dir <= alg.Right; dir++ {
		if dir == skip {
			continue
		}
		if p.CanMove(alg.Move{Dir: dir, Amount: 1}) {
			return true
		}
	}
	return false
}
