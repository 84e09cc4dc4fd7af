package main

import (
	"github.com/gdamore/tcell"
	"github.com/gdamore/tcell/views"
	termbox "github.com/nsf/termbox-go"

	"github.com/borkshop/termites/internal/input"
	"github.com/borkshop/termites/internal/moremath"
	"github.com/borkshop/termites/internal/point"
	"github.com/borkshop/termites/internal/sim"
	"github.com/borkshop/termites/internal/view"
)

// worldView is a scrollable widget showing the simulation grid.
type worldView struct {
	views.WidgetWatchers
	view views.View
	port *views.ViewPort
	sim  *sim.Simulation
	buf  view.Grid
}

func newView(s *sim.Simulation) *worldView {
	w, h := s.Grid().Size()
	v := &worldView{sim: s}
	v.port = views.NewViewPort(nil, 0, 0, 0, 0)
	v.buf = view.MakeGrid(point.Pt(w, h))
	return v
}

var termboxColors = map[termbox.Attribute]tcell.Color{
	termbox.ColorBlack:   tcell.ColorBlack,
	termbox.ColorRed:     tcell.ColorRed,
	termbox.ColorGreen:   tcell.ColorGreen,
	termbox.ColorYellow:  tcell.ColorYellow,
	termbox.ColorBlue:    tcell.ColorBlue,
	termbox.ColorMagenta: tcell.ColorFuchsia,
	termbox.ColorCyan:    tcell.ColorAqua,
	termbox.ColorWhite:   tcell.ColorWhite,
}

const termboxAttrs = termbox.AttrBold | termbox.AttrUnderline | termbox.AttrReverse

func cellStyle(c termbox.Cell) tcell.Style {
	style := tcell.StyleDefault
	if fg, def := termboxColors[c.Fg&^termboxAttrs]; def {
		style = style.Foreground(fg)
	}
	if bg, def := termboxColors[c.Bg&^termboxAttrs]; def {
		style = style.Background(bg)
	}
	if c.Fg&termbox.AttrBold != 0 {
		style = style.Bold(true)
	}
	return style
}

func (v *worldView) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyRune:
			vw, vh := v.port.Size()
			page := point.Pt(moremath.MaxInt(1, vw/2), moremath.MaxInt(1, vh/2))
			move, have := input.ParseMove(ev.Rune(), page)
			if have {
				v.scroll(move)
			}
			return have
		}
	}
	return false
}

func (v *worldView) scroll(move point.Point) {
	dist := move.Abs()
	if move.X < 0 {
		v.port.ScrollLeft(dist.X)
	} else {
		v.port.ScrollRight(dist.X)
	}
	if move.Y < 0 {
		v.port.ScrollUp(dist.Y)
	} else {
		v.port.ScrollDown(dist.Y)
	}
	v.PostEventWidgetContent(v)
}

func (v *worldView) Size() (int, int) { return v.sim.Grid().Size() }

func (v *worldView) SetView(view views.View) {
	v.port.SetView(view)
	v.view = view
	if v.view == nil {
		return
	}
	v.Resize()
	v.PostEventWidgetContent(v)
}

func (v *worldView) Resize() {
	if v.view == nil {
		return
	}
	vw, vh := v.view.Size()
	w, h := v.sim.Grid().Size()
	v.port.Resize(0, 0, vw, vh)
	v.port.SetContentSize(w, h, true)
}

func (v *worldView) Draw() {
	if v.view == nil {
		return
	}
	v.port.Fill(' ', tcell.StyleDefault)
	v.buf.Clear()
	v.sim.Render(v.buf)
	for y := 0; y < v.buf.Size.Y; y++ {
		for x := 0; x < v.buf.Size.X; x++ {
			c := v.buf.Get(x, y)
			if c.Ch == 0 || c.Ch == sim.EmptyGlyph {
				continue
			}
			v.port.SetContent(x, y, c.Ch, nil, cellStyle(c))
		}
	}
}
