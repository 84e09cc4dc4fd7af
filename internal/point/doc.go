/*
Package point provides the coordinate and heading types shared by the grid and
the termites that wander it.

Point is cast-compatible with "image".Point, so rectangles and bounds can be
handed to the standard library (and to the terminal view) without copying.

Dir is one of the four cardinal headings. Rotations are arithmetic on the
4-cycle North, East, South, West: a left turn subtracts one step, a right turn
adds one, and reversing adds two.

*/
package point
