package point

import "fmt"

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point { return Point{x, y} }

// Point represents a point in <X,Y> 2-space; Y grows downward, so row y of a
// grid is the y-th line of its rendering.
type Point struct{ X, Y int }

// Zero is the origin, the zero value of Point.
var Zero = Point{}

func (pt Point) String() string { return fmt.Sprintf("(%d,%d)", pt.X, pt.Y) }

// Equal returns true if both this point's X and Y components equal another's.
func (pt Point) Equal(other Point) bool {
	return pt.X == other.X && pt.Y == other.Y
}

// Add adds another point's values to a copy of this point, returning the copy.
func (pt Point) Add(other Point) Point {
	pt.X += other.X
	pt.Y += other.Y
	return pt
}

// Abs returns a copy of this point with its values non-negative.
func (pt Point) Abs() Point {
	if pt.X < 0 {
		pt.X = -pt.X
	}
	if pt.Y < 0 {
		pt.Y = -pt.Y
	}
	return pt
}
