package point_test

import (
	"image"
	"testing"

	. "github.com/borkshop/termites/internal/point"
	"github.com/stretchr/testify/assert"
)

func TestPoint_compat(t *testing.T) {
	pt := Pt(2, 5)
	ipt := image.Pt(2, 5)
	assert.Equal(t, ipt, image.Point(pt))
	assert.Equal(t, pt, Point(ipt))
}

func TestPoint_arith(t *testing.T) {
	a, b := Pt(3, -4), Pt(-1, 2)
	assert.Equal(t, Pt(2, -2), a.Add(b))
	assert.Equal(t, Pt(3, 4), a.Abs())
	assert.Equal(t, Pt(1, 2), b.Abs())
	assert.True(t, a.Add(b).Add(Pt(-2, 2)).Equal(Zero))
	assert.Equal(t, "(3,-4)", a.String())
}

func TestDir(t *testing.T) {
	for _, tc := range []struct {
		d                    Dir
		left, right, reverse Dir
		delta                Point
	}{
		{North, West, East, South, Pt(0, -1)},
		{East, North, South, West, Pt(1, 0)},
		{South, East, West, North, Pt(0, 1)},
		{West, South, North, East, Pt(-1, 0)},
	} {
		t.Run(tc.d.String(), func(t *testing.T) {
			assert.Equal(t, tc.left, tc.d.Left())
			assert.Equal(t, tc.right, tc.d.Right())
			assert.Equal(t, tc.reverse, tc.d.Reverse())
			assert.Equal(t, tc.delta, tc.d.Delta())
			assert.Equal(t, tc.d, tc.d.Left().Right())
			assert.Equal(t, tc.d, tc.d.Reverse().Reverse())
			assert.Equal(t, Zero, tc.d.Delta().Add(tc.d.Reverse().Delta()))
		})
	}
}

func TestDir_invalid(t *testing.T) {
	d := Dir(7)
	assert.False(t, d.Valid())
	assert.Equal(t, "Dir(7)", d.String())
	assert.Panics(t, func() { d.Delta() })
}
