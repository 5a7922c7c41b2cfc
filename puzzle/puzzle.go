package puzzle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/benwh1/slidy-cli/alg"
)

// Puzzle is a sliding-tile puzzle state. Tiles are stored row-major; 0 is
// the blank.
type Puzzle struct {
	size  Size
	tiles []int
	blank int // index of the blank in tiles
}

// New returns the solved puzzle of the given size: tiles 1..n-1 in
// row-major order with the blank in the bottom-right corner.
func New(size Size) *Puzzle {
	n := size.Area()
	tiles := make([]int, n)
	for i := 0; i < n-1; i++ {
		tiles[i] = i + 1
	}
	return &Puzzle{size: size, tiles: tiles, blank: n - 1}
}

// Parse reads a state in inline notation: tiles separated by spaces, rows
// separated by "/" (newlines are accepted as well). Every value
// 0..W*H-1 must appear exactly once and all rows must have equal length.
func Parse(s string) (*Puzzle, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\n", "/"))
	rowStrs := strings.Split(s, "/")
	var tiles []int
	w := -1
	for _, row := range rowStrs {
		fields := strings.Fields(row)
		if len(fields) == 0 {
			return nil, fmt.Errorf("%w: empty row", ErrBadState)
		}
		if w == -1 {
			w = len(fields)
		} else if len(fields) != w {
			return nil, fmt.Errorf("%w: ragged rows", ErrBadState)
		}
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not a tile", ErrBadState, f)
			}
			tiles = append(tiles, v)
		}
	}
	h := len(rowStrs)
	n := w * h
	seen := make([]bool, n)
	blank := -1
	for i, v := range tiles {
		if v < 0 || v >= n || seen[v] {
			return nil, fmt.Errorf("%w: bad or repeated tile %d", ErrBadState, v)
		}
		seen[v] = true
		if v == 0 {
			blank = i
		}
	}
	return &Puzzle{size: Size{W: w, H: h}, tiles: tiles, blank: blank}, nil
}

// Size returns the puzzle's dimensions.
func (p *Puzzle) Size() Size {
	return p.size
}

// Tile returns the value at column x, row y.
func (p *Puzzle) Tile(x, y int) int {
	return p.tiles[y*p.size.W+x]
}

// Tiles returns a copy of the row-major tile values.
func (p *Puzzle) Tiles() []int {
	cp := make([]int, len(p.tiles))
	copy(cp, p.tiles)
	return cp
}

// BlankPosition returns the column and row of the blank.
func (p *Puzzle) BlankPosition() (x, y int) {
	return p.blank % p.size.W, p.blank / p.size.W
}

// Clone returns a deep copy of the state.
func (p *Puzzle) Clone() *Puzzle {
	tiles := make([]int, len(p.tiles))
	copy(tiles, p.tiles)
	return &Puzzle{size: p.size, tiles: tiles, blank: p.blank}
}

// Reset restores the solved state.
func (p *Puzzle) Reset() {
	n := p.size.Area()
	for i := 0; i < n-1; i++ {
		p.tiles[i] = i + 1
	}
	p.tiles[n-1] = 0
	p.blank = n - 1
}

// Equal reports whether two states have the same size and tiles.
func (p *Puzzle) Equal(q *Puzzle) bool {
	if p.size != q.size {
		return false
	}
	for i, v := range p.tiles {
		if q.tiles[i] != v {
			return false
		}
	}
	return true
}

// IsSolved reports whether the state is the solved state.
func (p *Puzzle) IsSolved() bool {
	n := p.size.Area()
	for i := 0; i < n-1; i++ {
		if p.tiles[i] != i+1 {
			return false
		}
	}
	return p.tiles[n-1] == 0
}

// IsSolvable reports whether the solved state is reachable. A state is
// solvable exactly when the parity of its tile permutation matches the
// parity of the blank's taxicab distance from the bottom-right corner.
// Complexity: O(n).
func (p *Puzzle) IsSolvable() bool {
	n := p.size.Area()
	// home returns the solved index of a tile value.
	home := func(v int) int {
		if v == 0 {
			return n - 1
		}
		return v - 1
	}
	visited := make([]bool, n)
	transpositions := 0
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		// Walk the cycle containing position i; a cycle of length k
		// contributes k-1 transpositions.
		j := i
		for !visited[j] {
			visited[j] = true
			j = home(p.tiles[j])
			transpositions++
		}
		transpositions--
	}
	bx, by := p.BlankPosition()
	blankDist := (p.size.W - 1 - bx) + (p.size.H - 1 - by)
	return transpositions%2 == blankDist%2
}

// String renders the state in inline notation, e.g. "1 2 3/4 5 6/7 8 0".
func (p *Puzzle) String() string {
	var b strings.Builder
	for y := 0; y < p.size.H; y++ {
		if y > 0 {
			b.WriteByte('/')
		}
		for x := 0; x < p.size.W; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(p.Tile(x, y)))
		}
	}
	return b.String()
}

// DisplayGrid renders the state as an aligned grid, one row per line.
func (p *Puzzle) DisplayGrid() string {
	width := len(strconv.Itoa(p.size.Area() - 1))
	var b strings.Builder
	for y := 0; y < p.size.H; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < p.size.W; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*d", width, p.Tile(x, y))
		}
	}
	return b.String()
}

// Transpose returns the state mirrored across the main diagonal. Tile
// values are renumbered so that the transpose of a solved puzzle is the
// solved puzzle of the transposed size.
func (p *Puzzle) Transpose() *Puzzle {
	t := New(p.size.Transpose())
	for y := 0; y < p.size.H; y++ {
		for x := 0; x < p.size.W; x++ {
			v := p.Tile(x, y)
			t.tiles[x*t.size.W+y] = transposeValue(v, p.size)
		}
	}
	for i, v := range t.tiles {
		if v == 0 {
			t.blank = i
			break
		}
	}
	return t
}

// transposeValue maps a tile value of a W×H puzzle to the value occupying
// the mirrored home cell in the H×W puzzle.
func transposeValue(v int, s Size) int {
	if v == 0 {
		return 0
	}
	hx, hy := (v-1)%s.W, (v-1)/s.W
	if hx == s.W-1 && hy == s.H-1 {
		return 0
	}
	return hx*s.H + hy + 1
}

// CanMove reports whether the move is legal in the current state.
func (p *Puzzle) CanMove(m alg.Move) bool {
	dx, dy := m.Dir.BlankDelta()
	bx, by := p.BlankPosition()
	nx, ny := bx+dx*m.Amount, by+dy*m.Amount
	return nx >= 0 && nx < p.size.W && ny >= 0 && ny < p.size.H
}

// ApplyMove slides Amount tiles in the move's direction. Returns
// ErrIllegalMove (leaving the state untouched) when the blank would leave
// the board.
func (p *Puzzle) ApplyMove(m alg.Move) error {
	if !p.CanMove(m) {
		return fmt.Errorf("%w: %s at blank %d,%d on %s",
			ErrIllegalMove, m, p.blank%p.size.W, p.blank/p.size.W, p.size)
	}
	dx, dy := m.Dir.BlankDelta()
	step := dy*p.size.W + dx
	for i := 0; i < m.Amount; i++ {
		next := p.blank + step
		p.tiles[p.blank] = p.tiles[next]
		p.tiles[next] = 0
		p.blank = next
	}
	return nil
}

// ApplyAlg applies a whole move sequence strictly: if any move is illegal
// the state is left unchanged and an error is returned.
func (p *Puzzle) ApplyAlg(a *alg.Algorithm) error {
	q := p.Clone()
	for _, m := range a.Moves() {
		if err := q.ApplyMove(m); err != nil {
			return err
		}
	}
	p.tiles = q.tiles
	p.blank = q.blank
	return nil
}

// EmbedInto writes this state into the bottom-right corner of target,
// renumbering tiles so that solving the embedded region solves this state.
// The corresponding block of target must currently hold exactly the tiles
// whose solved homes lie in that block; otherwise ErrEmbed is returned and
// the target is unchanged.
func (p *Puzzle) EmbedInto(target *Puzzle) error {
	tw, th := target.size.W, target.size.H
	w, h := p.size.W, p.size.H
	if w > tw || h > th {
		return fmt.Errorf("%w: %s into %s", ErrEmbed, p.size, target.size)
	}
	offX, offY := tw-w, th-h

	// The set of big-puzzle values whose homes fall inside the block.
	blockValue := func(x, y int) int {
		if x == tw-1 && y == th-1 {
			return 0
		}
		return y*tw + x + 1
	}
	expected := make(map[int]bool, w*h)
	for y := offY; y < th; y++ {
		for x := offX; x < tw; x++ {
			expected[blockValue(x, y)] = true
		}
	}
	for y := offY; y < th; y++ {
		for x := offX; x < tw; x++ {
			if !expected[target.Tile(x, y)] {
				return fmt.Errorf("%w: tile %d occupies the %s block of %s",
					ErrEmbed, target.Tile(x, y), p.size, target.size)
			}
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := p.Tile(x, y)
			big := 0
			if v != 0 {
				hx, hy := (v-1)%w, (v-1)/w
				big = blockValue(hx+offX, hy+offY)
			}
			idx := (y+offY)*tw + (x + offX)
			target.tiles[idx] = big
			if big == 0 {
				target.blank = idx
			}
		}
	}
	return nil
}
