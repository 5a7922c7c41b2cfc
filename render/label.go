package render

import (
	"errors"
	"fmt"
)

// ErrUnknownName is returned when parsing an unrecognized label or
// coloring name.
var ErrUnknownName = errors.New("render: unknown name")

// Label assigns each tile, identified by its solved position, to a group.
// Index is in [0, Count).
type Label interface {
	Index(x, y, w, h int) int
	Count(w, h int) int
}

// RowGrids gives every tile its own group, row-major.
type RowGrids struct{}

func (RowGrids) Index(x, y, w, _ int) int { return y*w + x }
func (RowGrids) Count(w, h int) int       { return w * h }

// Rows groups tiles by their solved row.
type Rows struct{}

func (Rows) Index(_, y, _, _ int) int { return y }
func (Rows) Count(_, h int) int       { return h }

// Fringe groups tiles by L-shaped layers from the top-left corner.
type Fringe struct{}

func (Fringe) Index(x, y, _, _ int) int { return min(x, y) }
func (Fringe) Count(w, h int) int       { return min(w, h) }

// SquareFringe peels single rows or columns off the longer side until the
// remaining board is square, then continues as Fringe.
type SquareFringe struct{}

func (SquareFringe) Index(x, y, w, h int) int {
	if h > w {
		x, y, w, h = y, x, h, w
	}
	d := w - h
	if x < d {
		return x
	}
	return d + min(x-d, y)
}

func (SquareFringe) Count(w, h int) int { return max(w, h) }

// SplitFringe is Fringe with the row and column arm of each layer in
// separate groups.
type SplitFringe struct{}

func (SplitFringe) Index(x, y, _, _ int) int {
	if y <= x {
		return 2 * y
	}
	return 2*x + 1
}

func (SplitFringe) Count(w, h int) int { return 2*min(w, h) - 1 }

// SplitSquareFringe is SquareFringe with the square remainder labelled by
// SplitFringe.
type SplitSquareFringe struct{}

func (SplitSquareFringe) Index(x, y, w, h int) int {
	if h > w {
		x, y, w, h = y, x, h, w
	}
	d := w - h
	if x < d {
		return x
	}
	return d + SplitFringe{}.Index(x-d, y, h, h)
}

func (SplitSquareFringe) Count(w, h int) int {
	return max(w, h) - min(w, h) + 2*min(w, h) - 1
}

// Diagonals groups tiles by anti-diagonal.
type Diagonals struct{}

func (Diagonals) Index(x, y, _, _ int) int { return x + y }
func (Diagonals) Count(w, h int) int       { return w + h - 1 }

// Checkerboard alternates two groups.
type Checkerboard struct{}

func (Checkerboard) Index(x, y, _, _ int) int { return (x + y) % 2 }
func (Checkerboard) Count(_, _ int) int       { return 2 }

// ParseLabel maps a CLI label name to its Label.
func ParseLabel(name string) (Label, error) {
	switch name {
	case "row-grids":
		return RowGrids{}, nil
	case "rows":
		return Rows{}, nil
	case "fringe":
		return Fringe{}, nil
	case "square-fringe":
		return SquareFringe{}, nil
	case "split-fringe":
		return SplitFringe{}, nil
	case "split-square-fringe":
		return SplitSquareFringe{}, nil
	case "diagonals":
		return Diagonals{}, nil
	case "checkerboard":
		return Checkerboard{}, nil
	default:
		return nil, fmt.Errorf("%w: label %q", ErrUnknownName, name)
	}
}
