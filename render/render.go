package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/benwh1/slidy-cli/puzzle"
)

// Coloring maps a label group to a CSS color.
type Coloring interface {
	Color(index, count int) string
}

// Rainbow sweeps the hue circle across the label groups.
type Rainbow struct{}

// Color returns an hsl() color for the group.
func (Rainbow) Color(index, count int) string {
	if count < 1 {
		count = 1
	}
	hue := index * 330 / count
	return fmt.Sprintf("hsl(%d,70%%,60%%)", hue)
}

// None paints no fill at all.
type None struct{}

func (None) Color(_, _ int) string { return "none" }

// ParseColoring maps a CLI coloring name to its Coloring.
func ParseColoring(name string) (Coloring, error) {
	switch name {
	case "rainbow":
		return Rainbow{}, nil
	case "none":
		return None{}, nil
	default:
		return nil, fmt.Errorf("%w: coloring %q", ErrUnknownName, name)
	}
}

// Renderer draws puzzle states as SVG.
type Renderer struct {
	Label    Label
	Coloring Coloring
	TileSize float64
}

// Render writes an SVG image of the state. Tiles are colored by the solved
// position of the tile they hold; the blank cell is left empty.
func (r *Renderer) Render(w io.Writer, p *puzzle.Puzzle) error {
	size := p.Size()
	tile := int(r.TileSize)
	if tile < 1 {
		tile = 75
	}
	fontSize := tile * 30 / 75

	canvas := svg.New(w)
	canvas.Start(size.W*tile, size.H*tile)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			v := p.Tile(x, y)
			if v == 0 {
				continue
			}
			hx, hy := (v-1)%size.W, (v-1)/size.W
			fill := r.Coloring.Color(r.Label.Index(hx, hy, size.W, size.H), r.Label.Count(size.W, size.H))
			canvas.Rect(x*tile, y*tile, tile, tile,
				fmt.Sprintf("fill:%s;stroke:black;stroke-width:1", fill))
			canvas.Text(x*tile+tile/2, y*tile+tile/2+fontSize/3,
				fmt.Sprintf("%d", v),
				fmt.Sprintf("font-size:%dpx;font-family:sans-serif;text-anchor:middle;fill:black", fontSize))
		}
	}
	canvas.End()
	return nil
}
