package alg

import (
	"fmt"
	"strings"
	"unicode"
)

// Parse reads a move sequence in the standard notation. Both short
// ("R3UL2") and long ("RRRULL") forms are accepted, with or without
// whitespace between moves, in either letter case. An empty string parses
// to the empty algorithm.
func Parse(s string) (*Algorithm, error) {
	var moves []Move
	rs := []rune(s)
	i := 0
	for i < len(rs) {
		r := rs[i]
		if unicode.IsSpace(r) {
			i++
			continue
		}
		dir, ok := parseDirection(r)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected %q at position %d", ErrSyntax, r, i)
		}
		i++
		amount, digits := 0, false
		for i < len(rs) && rs[i] >= '0' && rs[i] <= '9' {
			digits = true
			amount = amount*10 + int(rs[i]-'0')
			if amount > 1<<20 {
				return nil, fmt.Errorf("%w: move amount too large at position %d", ErrSyntax, i)
			}
			i++
		}
		if !digits {
			amount = 1
		} else if amount == 0 {
			return nil, fmt.Errorf("%w: zero move amount at position %d", ErrSyntax, i-1)
		}
		moves = append(moves, Move{Dir: dir, Amount: amount})
	}
	return &Algorithm{moves: moves}, nil
}

// String returns the short unspaced notation, e.g. "R3UL2".
func (a *Algorithm) String() string {
	var b strings.Builder
	for _, m := range a.moves {
		b.WriteString(m.String())
	}
	return b.String()
}

// DisplayShortSpaced returns the short notation with moves separated by
// spaces, e.g. "R3 U L2".
func (a *Algorithm) DisplayShortSpaced() string {
	parts := make([]string, len(a.moves))
	for i, m := range a.moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// DisplayLongUnspaced returns the long notation with each single-tile move
// written out, e.g. "RRRULL".
func (a *Algorithm) DisplayLongUnspaced() string {
	var b strings.Builder
	for _, m := range a.moves {
		b.WriteString(m.longString(""))
	}
	return b.String()
}

// DisplayLongSpaced returns the long notation with single-tile moves
// separated by spaces, e.g. "R R R U L L".
func (a *Algorithm) DisplayLongSpaced() string {
	parts := make([]string, 0, a.LenSTM())
	for _, m := range a.moves {
		for i := 0; i < m.Amount; i++ {
			parts = append(parts, m.Dir.String())
		}
	}
	return strings.Join(parts, " ")
}
