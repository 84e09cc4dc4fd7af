// Package termite implements the wandering agent of the simulation: a
// termite that picks up wood chips it stands on and drops them next to other
// chips it bumps into.
package termite

import (
	"fmt"

	"github.com/borkshop/termites/internal/grid"
	"github.com/borkshop/termites/internal/point"
)

// Turn probabilities per step; anything at or above turnRight keeps heading.
const (
	turnLeft  = 0.1
	turnRight = 0.2
)

// Rand is the source of randomness consumed by termites; it is satisfied by
// *rand.Rand from both "math/rand" and "golang.org/x/exp/rand".
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Termite is a single agent on a shared grid. Its position is mirrored by the
// termite mark in the grid; every move updates both.
type Termite struct {
	grid *grid.Grid // borrowed, shared with every other termite
	pos  point.Point
	dir  point.Dir
	chip bool
}

// New places a new termite, carrying nothing, on the grid; panics if the cell
// already holds a termite.
func New(g *grid.Grid, pt point.Point, dir point.Dir) *Termite {
	if !dir.Valid() {
		panic(fmt.Sprintf("invalid termite direction %v", dir))
	}
	pt = g.Wrap(pt)
	g.PlaceTermiteAt(pt)
	return &Termite{grid: g, pos: pt, dir: dir}
}

// Coords returns the termite's position.
func (t *Termite) Coords() point.Point { return t.pos }

// Dir returns the termite's heading.
func (t *Termite) Dir() point.Dir { return t.dir }

// CarriesWoodChip returns true if the termite is carrying a wood chip.
func (t *Termite) CarriesWoodChip() bool { return t.chip }

func (t *Termite) String() string {
	carry := ""
	if t.chip {
		carry = " carrying"
	}
	return fmt.Sprintf("termite@%v %v%s", t.pos, t.dir, carry)
}

// Step advances the termite one time step:
//   - maybe turn a quarter left or right
//   - if carrying and facing a chip, drop the carried chip here and turn around
//   - if not carrying (at the start of the step) and standing on a chip, pick
//     it up and turn around
//   - move ahead unless a termite is there, or a chip is there and we carry
//     one
func (t *Termite) Step(rng Rand) {
	if r := rng.Float64(); r < turnLeft {
		t.dir = t.dir.Left()
	} else if r < turnRight {
		t.dir = t.dir.Right()
	}

	ahead := t.grid.CoordsInDirection(t.pos, t.dir)
	chipAhead := t.grid.HasWoodChipAt(ahead)
	carried := t.chip
	chipHere := t.grid.HasWoodChipAt(t.pos)

	if carried && chipAhead {
		t.grid.PlaceWoodChipAt(t.pos)
		t.chip = false
		t.dir = t.dir.Reverse()
	}

	if !carried && chipHere {
		t.grid.RemoveWoodChipAt(t.pos)
		t.chip = true
		t.dir = t.dir.Reverse()
	}

	// heading may have changed above
	ahead = t.grid.CoordsInDirection(t.pos, t.dir)
	chipAhead = t.grid.HasWoodChipAt(ahead)
	termiteAhead := t.grid.HasTermiteAt(ahead)

	if termiteAhead || (t.chip && chipAhead) {
		return
	}
	t.grid.RemoveTermiteAt(t.pos)
	t.pos = ahead
	t.grid.PlaceTermiteAt(t.pos)
}
