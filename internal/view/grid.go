// Package view provides an off-screen buffer of terminal cells that world
// state is rendered into, and ways to get it back out as text. It also holds
// a bounded log buffer for diagnostics written while a terminal UI is up.
package view

import (
	"fmt"
	"unicode/utf8"

	termbox "github.com/nsf/termbox-go"

	"github.com/borkshop/termites/internal/point"
)

// Grid represents a sized buffer of terminal cells.
type Grid struct {
	Size point.Point
	Data []termbox.Cell
}

// MakeGrid makes a new Grid with the given size.
func MakeGrid(sz point.Point) Grid {
	g := Grid{Size: sz}
	g.Data = make([]termbox.Cell, sz.X*sz.Y)
	return g
}

// Resize update the grid size, growing Data capacity or truncating its length
// as needed; cell contents are left as they were.
func (g *Grid) Resize(sz point.Point) {
	g.Size = sz
	if n := sz.X * sz.Y; n > cap(g.Data) {
		g.Data = make([]termbox.Cell, n)
	} else {
		g.Data = g.Data[:n]
	}
}

// Clear zeroes every cell.
func (g Grid) Clear() {
	for i := range g.Data {
		g.Data[i] = termbox.Cell{}
	}
}

// Get returns a cell from the grid.
func (g Grid) Get(x, y int) termbox.Cell {
	return g.Data[y*g.Size.X+x]
}

// Set sets a cell in the grid.
func (g Grid) Set(x, y int, ch rune, fg, bg termbox.Attribute) {
	g.Data[y*g.Size.X+x] = termbox.Cell{Ch: ch, Fg: fg, Bg: bg}
}

// WriteString writes a string into the grid at the given position, returning
// how many cells were affected.
func (g Grid) WriteString(x, y int, mess string, args ...interface{}) int {
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	i := y*g.Size.X + x
	j := i
	for ; len(mess) > 0 && x < g.Size.X; x, j = x+1, j+1 {
		r, n := utf8.DecodeRuneInString(mess)
		mess = mess[n:]
		g.Data[j].Ch = r
	}
	return j - i
}

// Lines returns a slice of row strings from the grid, filling in any
// zero runes with the given one.
func (g Grid) Lines(fillZero rune) []string {
	lines := make([]string, g.Size.Y)
	line := make([]rune, g.Size.X)
	for y, i := 0, 0; y < g.Size.Y; y++ {
		for x := 0; x < g.Size.X; x++ {
			if ch := g.Data[i].Ch; ch != 0 {
				line[x] = ch
			} else {
				line[x] = fillZero
			}
			i++
		}
		lines[y] = string(line)
	}
	return lines
}
