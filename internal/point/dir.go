package point

import "fmt"

// Dir is a cardinal heading.
type Dir uint8

// The four headings, in clockwise order; the numbering is significant, since
// turning is arithmetic modulo NumDirs.
const (
	North Dir = iota
	East
	South
	West

	NumDirs = 4
)

var dirNames = [NumDirs]string{"north", "east", "south", "west"}

var dirDeltas = [NumDirs]Point{
	{0, -1},
	{1, 0},
	{0, 1},
	{-1, 0},
}

// Valid returns true only for the four defined headings.
func (d Dir) Valid() bool { return d < NumDirs }

func (d Dir) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Dir(%d)", uint8(d))
	}
	return dirNames[d]
}

// Left returns the heading a quarter turn counter-clockwise from d.
func (d Dir) Left() Dir { return (d + NumDirs - 1) % NumDirs }

// Right returns the heading a quarter turn clockwise from d.
func (d Dir) Right() Dir { return (d + 1) % NumDirs }

// Reverse returns the opposite heading.
func (d Dir) Reverse() Dir { return (d + 2) % NumDirs }

// Delta returns the unit step for the heading; panics on an invalid heading.
func (d Dir) Delta() Point {
	if !d.Valid() {
		panic(fmt.Sprintf("invalid direction %v", d))
	}
	return dirDeltas[d]
}
