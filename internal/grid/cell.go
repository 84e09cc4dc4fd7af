package grid

// Cell holds the occupancy of one grid location: at most one termite and at
// most one stationary wood chip, independently. The zero value is empty.
type Cell struct {
	termite bool
	chip    bool
}

// HasTermite returns true if a termite occupies the cell.
func (c Cell) HasTermite() bool { return c.termite }

// HasChip returns true if a stationary wood chip lies in the cell.
func (c Cell) HasChip() bool { return c.chip }

// PlaceTermite marks the cell as occupied by a termite; panics if it already
// is.
func (c *Cell) PlaceTermite() {
	if c.termite {
		panic("cell already has a termite")
	}
	c.termite = true
}

// RemoveTermite clears the termite mark; panics if there is none.
func (c *Cell) RemoveTermite() {
	if !c.termite {
		panic("cell has no termite")
	}
	c.termite = false
}

// PlaceChip drops a wood chip into the cell; panics if it already has one.
func (c *Cell) PlaceChip() {
	if c.chip {
		panic("cell already has a wood chip")
	}
	c.chip = true
}

// RemoveChip takes the wood chip out of the cell; panics if there is none.
func (c *Cell) RemoveChip() {
	if !c.chip {
		panic("cell has no wood chip")
	}
	c.chip = false
}
