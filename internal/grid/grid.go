// Package grid implements a fixed-size rectangular grid of cells with
// periodic boundaries: a coordinate that runs off one edge re-enters from the
// opposite one, so every integer coordinate names exactly one cell.
//
// Placing an occupant where one already is, or removing one that is absent,
// is a programming error and panics.
package grid

import (
	"fmt"
	"image"

	"github.com/borkshop/termites/internal/moremath"
	"github.com/borkshop/termites/internal/point"
)

// Grid is a torus of width*height cells, stored densely in row-major order.
type Grid struct {
	width, height int
	cells         []Cell
}

// New creates an empty grid of the given size; panics unless both dimensions
// are positive.
func New(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("invalid grid size %dx%d", width, height))
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Size returns the width and height of the grid.
func (g *Grid) Size() (width, height int) { return g.width, g.height }

// Bounds returns the canonical coordinate range of the grid.
func (g *Grid) Bounds() image.Rectangle { return image.Rect(0, 0, g.width, g.height) }

// Wrap maps any coordinate onto the canonical range [0,width)x[0,height).
func (g *Grid) Wrap(pt point.Point) point.Point {
	pt.X = moremath.ModInt(pt.X, g.width)
	pt.Y = moremath.ModInt(pt.Y, g.height)
	return pt
}

// At returns a copy of the cell at the (wrapped) coordinate.
func (g *Grid) At(pt point.Point) Cell { return *g.cell(pt) }

func (g *Grid) cell(pt point.Point) *Cell {
	pt = g.Wrap(pt)
	return &g.cells[pt.Y*g.width+pt.X]
}

// HasTermiteAt returns true if a termite occupies the cell at pt.
func (g *Grid) HasTermiteAt(pt point.Point) bool { return g.cell(pt).HasTermite() }

// HasWoodChipAt returns true if a stationary wood chip lies at pt.
func (g *Grid) HasWoodChipAt(pt point.Point) bool { return g.cell(pt).HasChip() }

// PlaceTermiteAt marks the cell at pt as occupied by a termite.
func (g *Grid) PlaceTermiteAt(pt point.Point) {
	c := g.cell(pt)
	if c.HasTermite() {
		panic(fmt.Sprintf("termite already at %v", g.Wrap(pt)))
	}
	c.PlaceTermite()
}

// RemoveTermiteAt clears the termite mark at pt.
func (g *Grid) RemoveTermiteAt(pt point.Point) {
	c := g.cell(pt)
	if !c.HasTermite() {
		panic(fmt.Sprintf("no termite at %v", g.Wrap(pt)))
	}
	c.RemoveTermite()
}

// PlaceWoodChipAt drops a wood chip at pt.
func (g *Grid) PlaceWoodChipAt(pt point.Point) {
	c := g.cell(pt)
	if c.HasChip() {
		panic(fmt.Sprintf("wood chip already at %v", g.Wrap(pt)))
	}
	c.PlaceChip()
}

// RemoveWoodChipAt takes the wood chip away from pt.
func (g *Grid) RemoveWoodChipAt(pt point.Point) {
	c := g.cell(pt)
	if !c.HasChip() {
		panic(fmt.Sprintf("no wood chip at %v", g.Wrap(pt)))
	}
	c.RemoveChip()
}

// CoordsInDirection returns the wrapped coordinate of the cell adjacent to pt
// in the given heading.
func (g *Grid) CoordsInDirection(pt point.Point, dir point.Dir) point.Point {
	return g.Wrap(g.Wrap(pt).Add(dir.Delta()))
}

// Count tallies termite and wood chip marks over the whole grid.
func (g *Grid) Count() (termites, chips int) {
	for i := range g.cells {
		if g.cells[i].termite {
			termites++
		}
		if g.cells[i].chip {
			chips++
		}
	}
	return termites, chips
}
