package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is the grid shape of a puzzle: W columns by H rows. Both dimensions
// are positive.
type Size struct {
	W, H int
}

// NewSize validates and builds a Size.
func NewSize(w, h int) (Size, error) {
	if w < 1 || h < 1 {
		return Size{}, fmt.Errorf("%w: %dx%d", ErrBadSize, w, h)
	}
	return Size{W: w, H: h}, nil
}

// ParseSize reads either a single integer "4" (meaning 4x4) or an
// explicit "WxH" pair such as "3x5".
func ParseSize(s string) (Size, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return NewSize(n, n)
	}
	w, h, found := strings.Cut(s, "x")
	if !found {
		return Size{}, fmt.Errorf("%w: %q", ErrBadSize, s)
	}
	wn, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil {
		return Size{}, fmt.Errorf("%w: %q", ErrBadSize, s)
	}
	hn, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return Size{}, fmt.Errorf("%w: %q", ErrBadSize, s)
	}
	return NewSize(wn, hn)
}

// String renders the size as "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

// Area returns W*H, the number of cells.
func (s Size) Area() int {
	return s.W * s.H
}

// Transpose swaps width and height.
func (s Size) Transpose() Size {
	return Size{W: s.H, H: s.W}
}

// Normalize returns the orientation with W <= H, and whether a transpose
// was needed to get there. Transposed configurations are equivalent for
// solving purposes and share one normalized form.
func (s Size) Normalize() (Size, bool) {
	if s.W > s.H {
		return s.Transpose(), true
	}
	return s, false
}
