package sim

import (
	termbox "github.com/nsf/termbox-go"

	"github.com/borkshop/termites/internal/moremath"
	"github.com/borkshop/termites/internal/point"
	"github.com/borkshop/termites/internal/view"
)

// Glyphs used when rendering; carried chips are not shown.
const (
	TermiteGlyph = '+'
	ChipGlyph    = 'O'
	EmptyGlyph   = ' '
)

// Render draws the grid into g, clipped to whichever of the two is smaller.
// A termite hides any chip under it.
func (sim *Simulation) Render(g view.Grid) {
	w, h := sim.grid.Size()
	w = moremath.MinInt(w, g.Size.X)
	h = moremath.MinInt(h, g.Size.Y)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := sim.grid.At(point.Pt(x, y))
			switch {
			case c.HasTermite():
				fg := termbox.ColorGreen
				if c.HasChip() {
					fg = termbox.ColorYellow
				}
				g.Set(x, y, TermiteGlyph, fg|termbox.AttrBold, termbox.ColorDefault)
			case c.HasChip():
				g.Set(x, y, ChipGlyph, termbox.ColorYellow, termbox.ColorDefault)
			default:
				g.Set(x, y, EmptyGlyph, termbox.ColorDefault, termbox.ColorDefault)
			}
		}
	}
}

// Lines renders the whole grid as one string per row.
func (sim *Simulation) Lines() []string {
	w, h := sim.grid.Size()
	g := view.MakeGrid(point.Pt(w, h))
	sim.Render(g)
	return g.Lines(EmptyGlyph)
}
