// Package input maps keys onto movements.
package input

import (
	"unicode"

	"github.com/borkshop/termites/internal/point"
)

// ParseMove parses an X/Y move from the given rune using the
// classic extended-vi roguelike keybindings of h/j/k/l and
// y/u/b/n. If the extra point is non-zero, then capitalized
// moves are parsed as a componentwise-multiple of it.
//
// Returns the parsed point and true if the rune was
// recognized, zero point and false otherwise.
func ParseMove(ch rune, extra point.Point) (point.Point, bool) {
	if pt, ok := parseExtViDir(ch); ok {
		return pt, true
	}
	if !extra.Equal(point.Zero) {
		if pt, ok := parseExtViDir(unicode.ToLower(ch)); ok {
			pt = point.Pt(extra.X*pt.X, extra.Y*pt.Y)
			return pt, true
		}
	}
	return point.Zero, false
}

func parseExtViDir(ch rune) (point.Point, bool) {
	switch ch {
	case 'h':
		return point.West.Delta(), true
	case 'l':
		return point.East.Delta(), true
	case 'k':
		return point.North.Delta(), true
	case 'j':
		return point.South.Delta(), true
	case 'y':
		return point.West.Delta().Add(point.North.Delta()), true
	case 'u':
		return point.East.Delta().Add(point.North.Delta()), true
	case 'b':
		return point.West.Delta().Add(point.South.Delta()), true
	case 'n':
		return point.East.Delta().Add(point.South.Delta()), true
	}
	return point.Zero, false
}
