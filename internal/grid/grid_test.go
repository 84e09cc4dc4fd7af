package grid_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borkshop/termites/internal/grid"
	"github.com/borkshop/termites/internal/moremath"
	"github.com/borkshop/termites/internal/point"
)

var dirs = []point.Dir{point.North, point.East, point.South, point.West}

func TestCell(t *testing.T) {
	var c grid.Cell
	assert.False(t, c.HasTermite())
	assert.False(t, c.HasChip())

	c.PlaceTermite()
	c.PlaceChip()
	assert.True(t, c.HasTermite())
	assert.True(t, c.HasChip())
	assert.Panics(t, c.PlaceTermite)
	assert.Panics(t, c.PlaceChip)

	c.RemoveTermite()
	assert.False(t, c.HasTermite())
	assert.True(t, c.HasChip())
	assert.Panics(t, c.RemoveTermite)

	c.RemoveChip()
	assert.False(t, c.HasChip())
	assert.Panics(t, c.RemoveChip)
}

func TestNew(t *testing.T) {
	g := grid.New(7, 4)
	w, h := g.Size()
	assert.Equal(t, 7, w)
	assert.Equal(t, 4, h)
	assert.Equal(t, 7, g.Bounds().Dx())
	assert.Equal(t, 4, g.Bounds().Dy())

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			assert.False(t, g.HasTermiteAt(point.Pt(x, y)))
			assert.False(t, g.HasWoodChipAt(point.Pt(x, y)))
		}
	}
	termites, chips := g.Count()
	assert.Equal(t, 0, termites)
	assert.Equal(t, 0, chips)

	for _, sz := range []point.Point{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: -3, Y: 5}} {
		assert.Panics(t, func() { grid.New(sz.X, sz.Y) }, "size %v", sz)
	}
}

func TestGrid_Wrap(t *testing.T) {
	for _, sz := range []point.Point{{X: 1, Y: 1}, {X: 3, Y: 5}, {X: 10, Y: 10}, {X: 17, Y: 2}} {
		g := grid.New(sz.X, sz.Y)
		for y := -1; y <= sz.Y; y++ {
			for x := -1; x <= sz.X; x++ {
				got := g.Wrap(point.Pt(x, y))
				assert.True(t, image.Point(got).In(g.Bounds()), "wrap %v in %v -> %v", point.Pt(x, y), sz, got)
				assert.Equal(t, point.Pt(moremath.ModInt(x, sz.X), moremath.ModInt(y, sz.Y)), got)
			}
		}
	}

	g := grid.New(10, 10)
	assert.Equal(t, point.Pt(9, 0), g.Wrap(point.Pt(-1, 10)))
	assert.Equal(t, point.Pt(3, 7), g.Wrap(point.Pt(-27, 37)))
}

func TestGrid_placeRemove(t *testing.T) {
	g := grid.New(5, 5)
	pt := point.Pt(2, 3)

	g.PlaceWoodChipAt(pt)
	assert.True(t, g.HasWoodChipAt(pt))
	assert.False(t, g.HasTermiteAt(pt))
	assert.Panics(t, func() { g.PlaceWoodChipAt(pt) })

	g.PlaceTermiteAt(pt)
	assert.True(t, g.HasTermiteAt(pt))
	assert.Panics(t, func() { g.PlaceTermiteAt(pt) })
	assert.True(t, g.At(pt).HasChip())
	assert.True(t, g.At(pt).HasTermite())

	termites, chips := g.Count()
	assert.Equal(t, 1, termites)
	assert.Equal(t, 1, chips)

	g.RemoveWoodChipAt(pt)
	assert.False(t, g.HasWoodChipAt(pt))
	assert.True(t, g.HasTermiteAt(pt))
	assert.Panics(t, func() { g.RemoveWoodChipAt(pt) })

	g.RemoveTermiteAt(pt)
	assert.False(t, g.HasTermiteAt(pt))
	assert.Panics(t, func() { g.RemoveTermiteAt(pt) })
}

func TestGrid_placeWrapped(t *testing.T) {
	g := grid.New(4, 3)
	g.PlaceTermiteAt(point.Pt(-1, -1))
	assert.True(t, g.HasTermiteAt(point.Pt(3, 2)))
	g.PlaceWoodChipAt(point.Pt(4, 3))
	assert.True(t, g.HasWoodChipAt(point.Pt(0, 0)))
	require.Panics(t, func() { g.PlaceTermiteAt(point.Pt(3, 2)) })
}

func TestGrid_CoordsInDirection(t *testing.T) {
	g := grid.New(10, 8)
	for _, tc := range []struct {
		from     point.Point
		dir      point.Dir
		expected point.Point
	}{
		{point.Pt(7, 3), point.North, point.Pt(7, 2)},
		{point.Pt(7, 3), point.East, point.Pt(8, 3)},
		{point.Pt(7, 3), point.South, point.Pt(7, 4)},
		{point.Pt(7, 3), point.West, point.Pt(6, 3)},
		{point.Pt(0, 0), point.North, point.Pt(0, 7)},
		{point.Pt(0, 0), point.West, point.Pt(9, 0)},
		{point.Pt(9, 7), point.East, point.Pt(0, 7)},
		{point.Pt(9, 7), point.South, point.Pt(9, 0)},
	} {
		assert.Equal(t, tc.expected, g.CoordsInDirection(tc.from, tc.dir), "%v %v", tc.from, tc.dir)
	}
}

func TestGrid_CoordsInDirection_inverse(t *testing.T) {
	for _, sz := range []point.Point{{X: 1, Y: 1}, {X: 2, Y: 3}, {X: 10, Y: 8}} {
		g := grid.New(sz.X, sz.Y)
		for y := 0; y < sz.Y; y++ {
			for x := 0; x < sz.X; x++ {
				pt := point.Pt(x, y)
				for _, d := range dirs {
					there := g.CoordsInDirection(pt, d)
					assert.Equal(t, pt, g.CoordsInDirection(there, d.Reverse()), "%v %v in %v", pt, d, sz)
				}
			}
		}
	}
}
