package solver

import (
	"fmt"

	"github.com/benwh1/slidy-cli/alg"
	"github.com/benwh1/slidy-cli/puzzle"
)

// MaxTableArea is the largest number of cells for which a full-state-space
// distance table is built. 9 cells means at most 9! = 362880 entries, one
// byte each.
const MaxTableArea = 9

// unreachable marks permutations outside the solvable coset.
const unreachable = 0xFF

// Table holds the exact solve distance of every reachable state of one
// puzzle size under one metric, indexed by the Lehmer rank of the tile
// permutation.
type Table struct {
	size   puzzle.Size
	metric alg.Metric
	dist   []uint8
}

// Size returns the puzzle size the table covers.
func (t *Table) Size() puzzle.Size { return t.size }

// Metric returns the metric the distances are measured in.
func (t *Table) Metric() alg.Metric { return t.metric }

// BuildTable computes the distance table for the given size and metric by
// breadth-first search from the solved state. The computation is
// deterministic and can take a moment for 9-cell sizes; callers are
// expected to persist the result. Returns ErrTableTooLarge above
// MaxTableArea.
func BuildTable(size puzzle.Size, metric alg.Metric) (*Table, error) {
	n := size.Area()
	if n > MaxTableArea {
		return nil, fmt.Errorf("%w: %s has %d cells", ErrTableTooLarge, size, n)
	}
	dist := make([]uint8, factorials[n])
	for i := range dist {
		dist[i] = unreachable
	}

	solved := puzzle.New(size)
	start := rankPermutation(solved.Tiles())
	dist[start] = 0
	queue := []int32{int32(start)}

	tiles := make([]int, n)
	for len(queue) > 0 {
		r := int(queue[0])
		queue = queue[1:]
		d := dist[r]
		unrankPermutation(r, tiles)

		blank := 0
		for i, v := range tiles {
			if v == 0 {
				blank = i
			}
		}
		bx, by := blank%size.W, blank/size.W

		for dir := alg.Up; dir <= alg.Right; dir++ {
			dx, dy := dir.BlankDelta()
			steps := 0
			x, y, idx := bx, by, blank
			for {
				nx, ny := x+dx, y+dy
				if nx < 0 || nx >= size.W || ny < 0 || ny >= size.H {
					break
				}
				nidx := ny*size.W + nx
				tiles[idx], tiles[nidx] = tiles[nidx], tiles[idx]
				x, y, idx = nx, ny, nidx
				steps++

				nr := rankPermutation(tiles)
				if dist[nr] == unreachable {
					dist[nr] = d + 1
					queue = append(queue, int32(nr))
				}
				// Under STM only single steps are unit-cost edges; longer
				// slides are reached through the intermediate states.
				if metric == alg.STM {
					break
				}
			}
			// Walk the blank back to restore the scratch state.
			for ; steps > 0; steps-- {
				pidx := (y-dy)*size.W + (x - dx)
				tiles[idx], tiles[pidx] = tiles[pidx], tiles[idx]
				x, y, idx = x-dx, y-dy, pidx
			}
		}
	}

	return &Table{size: size, metric: metric, dist: dist}, nil
}

// Distance returns the optimal solve length of the state under the
// table's metric, or ErrUnsolvable for states outside the solvable coset.
func (t *Table) Distance(p *puzzle.Puzzle) (int, error) {
	if p.Size() != t.size {
		return 0, fmt.Errorf("%w: %s vs %s", ErrSizeMismatch, p.Size(), t.size)
	}
	d := t.dist[rankPermutation(p.Tiles())]
	if d == unreachable {
		return 0, ErrUnsolvable
	}
	return int(d), nil
}

// Solve returns an optimal solution for the state under the table's
// metric by greedy distance descent: from every state some move reaches a
// state exactly one closer to solved. The input is not modified.
func (t *Table) Solve(p *puzzle.Puzzle) (*alg.Algorithm, error) {
	if p.Size() != t.size {
		return nil, fmt.Errorf("%w: %s vs %s", ErrSizeMismatch, p.Size(), t.size)
	}
	work := p.Clone()
	d := t.dist[rankPermutation(work.Tiles())]
	if d == unreachable {
		return nil, ErrUnsolvable
	}

	var moves []alg.Move
	for d > 0 {
		m, ok := t.descend(work, d)
		if !ok {
			// Cannot happen for a well-formed table; treated as corruption.
			return nil, fmt.Errorf("%w: no descending move at distance %d", ErrCorruptTable, d)
		}
		moves = append(moves, m)
		_ = work.ApplyMove(m)
		d--
	}
	return alg.New(moves...)
}

// descend finds one move taking the state from distance d to d-1.
func (t *Table) descend(p *puzzle.Puzzle, d uint8) (alg.Move, bool) {
	maxAmount := 1
	if t.metric == alg.MTM {
		if t.size.W > t.size.H {
			maxAmount = t.size.W - 1
		} else {
			maxAmount = t.size.H - 1
		}
	}
	for dir := alg.Up; dir <= alg.Right; dir++ {
		for amount := 1; amount <= maxAmount; amount++ {
			m := alg.Move{Dir: dir, Amount: amount}
			if !p.CanMove(m) {
				break
			}
			q := p.Clone()
			_ = q.ApplyMove(m)
			if t.dist[rankPermutation(q.Tiles())] == d-1 {
				return m, true
			}
		}
	}
	return alg.Move{}, false
}
