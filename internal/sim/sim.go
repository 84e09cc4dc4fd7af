// Package sim runs a termite simulation: a number of termites wandering a
// toroidal grid strewn with wood chips.
//
// Each termite is represented explicitly; wood chips only exist as marks in
// the grid, plus the carried flag of whichever termite holds one.
//
// Termites are stepped one by one in a fixed order, each seeing every move
// made before it in the same tick.
package sim

import (
	"fmt"

	"github.com/borkshop/termites/internal/grid"
	"github.com/borkshop/termites/internal/point"
	"github.com/borkshop/termites/internal/termite"
)

// Simulation owns a grid and the termites that wander it.
type Simulation struct {
	rng      termite.Rand
	grid     *grid.Grid
	termites []*termite.Termite
	numChips int
}

// New creates a simulation on a width*height grid, scattering numChips wood
// chips and numTermites termites uniformly at random.
//
// Chips and termites together must leave at least half of the grid empty, so
// that termites have room to move; New panics otherwise, or if any argument
// is not positive.
//
// Placement draws a fresh coordinate until it finds a cell free of the thing
// being placed; a termite may land on a chip.
func New(width, height, numChips, numTermites int, rng termite.Rand) *Simulation {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("invalid simulation size %dx%d", width, height))
	}
	if numChips <= 0 || numTermites <= 0 {
		panic(fmt.Sprintf("invalid simulation population: %d chips, %d termites", numChips, numTermites))
	}
	if numChips+numTermites >= width*height/2 {
		panic(fmt.Sprintf("overcrowded simulation: %d chips + %d termites on %dx%d", numChips, numTermites, width, height))
	}

	sim := &Simulation{
		rng:      rng,
		grid:     grid.New(width, height),
		termites: make([]*termite.Termite, 0, numTermites),
		numChips: numChips,
	}

	for k := 0; k < numChips; k++ {
		pt := sim.randomPoint()
		for sim.grid.HasWoodChipAt(pt) {
			pt = sim.randomPoint()
		}
		sim.grid.PlaceWoodChipAt(pt)
	}

	for k := 0; k < numTermites; k++ {
		pt := sim.randomPoint()
		for sim.grid.HasTermiteAt(pt) {
			pt = sim.randomPoint()
		}
		dir := point.Dir(rng.Intn(point.NumDirs))
		sim.termites = append(sim.termites, termite.New(sim.grid, pt, dir))
	}

	return sim
}

func (sim *Simulation) randomPoint() point.Point {
	w, h := sim.grid.Size()
	return point.Pt(sim.rng.Intn(w), sim.rng.Intn(h))
}

// Step advances every termite once, in creation order.
func (sim *Simulation) Step() {
	for _, t := range sim.termites {
		t.Step(sim.rng)
	}
}

// Process steps the simulation; it makes Simulation a proc.Proc.
func (sim *Simulation) Process() { sim.Step() }

// Grid returns the simulation grid; callers must not mutate it.
func (sim *Simulation) Grid() *grid.Grid { return sim.grid }

// Termites returns the termites in stepping order.
func (sim *Simulation) Termites() []*termite.Termite { return sim.termites }

// NumChips returns the number of wood chips, carried or not.
func (sim *Simulation) NumChips() int { return sim.numChips }

// NumTermites returns the number of termites.
func (sim *Simulation) NumTermites() int { return len(sim.termites) }

// Carried returns how many wood chips are currently being carried.
func (sim *Simulation) Carried() int {
	n := 0
	for _, t := range sim.termites {
		if t.CarriesWoodChip() {
			n++
		}
	}
	return n
}

// Check verifies that every termite's position agrees with the grid, that no
// other termite marks exist, and that no chip has been lost or created.
func (sim *Simulation) Check() error {
	seen := make(map[point.Point]int, len(sim.termites))
	for i, t := range sim.termites {
		pt := t.Coords()
		if j, dup := seen[pt]; dup {
			return fmt.Errorf("termites %d and %d both at %v", j, i, pt)
		}
		seen[pt] = i
		if !sim.grid.HasTermiteAt(pt) {
			return fmt.Errorf("termite %d at %v has no grid mark", i, pt)
		}
	}
	termites, chips := sim.grid.Count()
	if termites != len(sim.termites) {
		return fmt.Errorf("grid has %d termite marks, expected %d", termites, len(sim.termites))
	}
	if carried := sim.Carried(); chips+carried != sim.numChips {
		return fmt.Errorf("%d chips on grid + %d carried, expected %d", chips, carried, sim.numChips)
	}
	return nil
}
