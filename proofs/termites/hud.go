package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell"
	"github.com/gdamore/tcell/views"
)

// hudT frames the world view: a title bar describing the run, a status line,
// and a key bar; modal widgets temporarily replace the world view.
type hudT struct {
	views.Panel

	title  *views.SimpleStyledTextBar
	status *views.SimpleStyledTextBar
	keys   *keybar
	view   *worldView
	modal  views.Widget

	refresh, quit func()
}

// binding ties a key to an action; keys match case-insensitively.
type binding struct {
	key   rune
	label string
	do    func()
}

// keybar shows and dispatches the current key bindings. Opening a modal
// pushes a fresh layer of bindings; closing it pops back to the previous one.
type keybar struct {
	*views.SimpleStyledText
	bindings []binding
	saved    [][]binding
}

func newKeybar() *keybar {
	kb := &keybar{SimpleStyledText: views.NewSimpleStyledText()}
	kb.RegisterStyle('N', tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite))
	kb.RegisterStyle('k', tcell.StyleDefault.
		Background(tcell.ColorYellow).
		Foreground(tcell.ColorDarkGreen))
	kb.RegisterStyle('l', tcell.StyleDefault.
		Background(tcell.ColorDarkGreen).
		Foreground(tcell.ColorYellow))
	return kb
}

func sameKey(a, b rune) bool { return unicode.ToUpper(a) == unicode.ToUpper(b) }

func (kb *keybar) find(k rune) *binding {
	for i := range kb.bindings {
		if sameKey(kb.bindings[i].key, k) {
			return &kb.bindings[i]
		}
	}
	return nil
}

// bind adds a binding to the current layer; panics if the key is taken.
func (kb *keybar) bind(k rune, label string, do func()) {
	if kb.find(k) != nil {
		panic(fmt.Sprintf("key %q already bound", k))
	}
	kb.bindings = append(kb.bindings, binding{k, label, do})
	kb.render()
}

// relabel changes the label of k in every layer that binds it.
func (kb *keybar) relabel(k rune, label string) {
	set := func(layer []binding) {
		for i := range layer {
			if sameKey(layer[i].key, k) {
				layer[i].label = label
			}
		}
	}
	for _, layer := range kb.saved {
		set(layer)
	}
	set(kb.bindings)
	kb.render()
}

func (kb *keybar) push() {
	kb.saved = append(kb.saved, kb.bindings)
	kb.bindings = nil
	kb.render()
}

func (kb *keybar) pop() {
	if n := len(kb.saved); n > 0 {
		kb.bindings = kb.saved[n-1]
		kb.saved = kb.saved[:n-1]
		kb.render()
	}
}

func (kb *keybar) render() {
	var sb strings.Builder
	for i, b := range kb.bindings {
		if i > 0 {
			sb.WriteString("%N ")
		}
		fmt.Fprintf(&sb, "%%k %c %%l %s ", b.key, b.label)
	}
	sb.WriteString("%N")
	kb.SetMarkup(sb.String())
}

func (kb *keybar) HandleEvent(ev tcell.Event) bool {
	if ev, ok := ev.(*tcell.EventKey); ok && ev.Key() == tcell.KeyRune {
		if b := kb.find(ev.Rune()); b != nil {
			b.do()
			return true
		}
	}
	return false
}

func newHUD(view *worldView, about string, refresh, quit func()) *hudT {
	hud := &hudT{
		view:    view,
		keys:    newKeybar(),
		refresh: refresh,
		quit:    quit,
	}

	hud.title = views.NewSimpleStyledTextBar()
	hud.title.SetLeft("Termites")
	hud.title.SetRight(about)

	hud.status = views.NewSimpleStyledTextBar()

	hud.SetTitle(hud.title)
	hud.SetMenu(hud.status)
	hud.SetContent(hud.view)
	hud.SetStatus(hud.keys)
	return hud
}

// showModal replaces the world view with wid until Q or Esc is pressed.
func (hud *hudT) showModal(name string, wid views.Widget) {
	if hud.modal != nil {
		hud.hideModal()
	}
	hud.modal = wid
	hud.keys.push()
	hud.keys.bind('Q', "Resume", hud.hideModal)
	hud.title.SetCenter(name)
	hud.SetContent(wid)
}

func (hud *hudT) hideModal() {
	if hud.modal == nil {
		return
	}
	hud.modal = nil
	hud.keys.pop()
	hud.title.SetCenter("")
	hud.SetContent(hud.view)
}

func (hud *hudT) HandleEvent(ev tcell.Event) bool {
	if ev, ok := ev.(*tcell.EventKey); ok {
		switch ev.Key() {
		case tcell.KeyCtrlL:
			hud.refresh()
			return true
		case tcell.KeyCtrlC:
			hud.quit()
			return true
		case tcell.KeyEscape:
			if hud.modal != nil {
				hud.hideModal()
				return true
			}
		}
	}
	return hud.Panel.HandleEvent(ev)
}
