package main

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell"
	"github.com/gdamore/tcell/views"

	"github.com/borkshop/termites/internal/view"
)

// watcher runs a simulation under a live terminal view, one step per
// interval, until the requested number of steps is reached.
//
// Simulation state is only touched on the application goroutine; the pump
// goroutine just asks for ticks.
type watcher struct {
	*session
	app      *views.Application
	hud      *hudT
	logs     *view.Logs
	paused   bool
	interval time.Duration

	idle   atomic.Bool // paused or finished, as last seen by the app goroutine
	queued atomic.Bool // a tick is posted and not yet run
	done   chan struct{}
	halt   sync.Once
}

func newWatcher(r *session, interval time.Duration, logs *view.Logs) *watcher {
	w := &watcher{
		session:  r,
		app:      &views.Application{},
		logs:     logs,
		interval: interval,
		done:     make(chan struct{}),
	}
	width, height := r.sim.Grid().Size()
	about := fmt.Sprintf("%dx%d, %d termites, %d wood chips, seed %d",
		width, height, r.sim.NumTermites(), r.sim.NumChips(), r.seed)
	w.hud = newHUD(newView(r.sim), about, w.app.Refresh, w.quit)
	w.hud.keys.bind('P', "Pause", w.togglePause)
	w.hud.keys.bind('S', "Step", w.step)
	w.hud.keys.bind('*', "Profile", w.toggleProfile)
	w.hud.keys.bind('G', "Log", w.showLogs)
	w.hud.keys.bind('?', "Help", w.help)
	w.hud.keys.bind('Q', "Quit", w.quit)
	w.app.SetRootWidget(w.hud)
	w.updateStatus()
	return w
}

// watch takes over the screen until the user quits.
func (w *watcher) watch(scr tcell.Screen) error {
	w.app.SetScreen(scr)
	go w.pump()
	err := w.app.Run()
	w.stop()
	if perr := w.perf.Close(); err == nil {
		err = perr
	}
	return err
}

// quit stops the tick pump, then asks the application to exit.
func (w *watcher) quit() {
	w.stop()
	w.app.Quit()
}

func (w *watcher) stop() { w.halt.Do(func() { close(w.done) }) }

// pump posts at most one tick at a time, and none while idle, so no more than
// one PostFunc goroutine is ever waiting on the screen's event queue.
func (w *watcher) pump() {
	tick := time.NewTicker(w.interval)
	defer tick.Stop()
	for {
		select {
		case <-w.done:
			return
		case <-tick.C:
			if w.idle.Load() || !w.queued.CompareAndSwap(false, true) {
				continue
			}
			w.app.PostFunc(w.tick)
		}
	}
}

func (w *watcher) tick() {
	w.queued.Store(false)
	if !w.paused {
		w.step()
	}
}

func (w *watcher) finished() bool { return int(w.clock.Now()) >= w.opts.steps }

func (w *watcher) step() {
	if w.finished() {
		return
	}
	w.perf.Process()
	if w.finished() {
		w.paused = true
		log.Printf("finished at %v", w.clock.Now())
	}
	w.updateStatus()
}

func (w *watcher) togglePause() {
	if w.finished() {
		return
	}
	w.paused = !w.paused
	if w.paused {
		log.Printf("paused at %v", w.clock.Now())
	} else {
		log.Printf("resumed at %v", w.clock.Now())
	}
	w.updateStatus()
}

func (w *watcher) toggleProfile() {
	if should, _ := w.perf.Running(); should {
		w.perf.Stop()
		log.Printf("profiling stopped at %v", w.clock.Now())
	} else {
		w.perf.Start()
		log.Printf("profiling into %q from %v", w.perf.OutputBase(), w.clock.Now())
	}
	if err := w.perf.Err(); err != nil {
		log.Printf("profiling failed: %v", err)
	}
	w.updateStatus()
}

func (w *watcher) updateStatus() {
	state, pause := "running", "Pause"
	switch {
	case w.finished():
		state, pause = "done", "Done"
	case w.paused:
		state, pause = "paused", "Resume"
	}
	w.idle.Store(w.paused || w.finished())
	w.hud.keys.relabel('P', pause)
	if should, _ := w.perf.Running(); should {
		w.hud.keys.relabel('*', "Unprofile")
	} else {
		w.hud.keys.relabel('*', "Profile")
	}
	w.hud.status.SetLeft(fmt.Sprintf("%v/%d %s carried=%d",
		w.clock.Now(), w.opts.steps, state, w.sim.Carried()))
	w.hud.status.SetRight(w.perf.Status())
}

func (w *watcher) help() {
	halp := views.NewTextArea()
	halp.SetLines([]string{
		`/-----------------------------------------\`,
		`| Scrolling: vi-style keys                |`,
		`|                                         |`,
		`|    y k u    h j k l  usual directions   |`,
		`|     \|/     y u b n  diagonals          |`,
		`|    h-+-l    capitals scroll half a page |`,
		`|     /|\                                 |`,
		`|    b j n                                |`,
		`|                                         |`,
		`| + termite   O wood chip                 |`,
		`| P pause/resume   S single step          |`,
		`| * toggle profiling   G show log         |`,
		`| Q or Esc closes this                    |`,
		`\-----------------------------------------/`,
	})
	if !w.paused && !w.finished() {
		w.togglePause()
	}
	w.hud.showModal("Help", halp)
}

func (w *watcher) showLogs() {
	lines := w.logs.Lines()
	if len(lines) == 0 {
		lines = []string{"(no log messages)"}
	}
	logv := views.NewTextArea()
	logv.SetLines(lines)
	logv.SetStyle(tcell.StyleDefault.Foreground(tcell.ColorSilver))
	w.hud.showModal("Log", logv)
}
