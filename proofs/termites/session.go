package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/borkshop/termites/internal/perf"
	"github.com/borkshop/termites/internal/point"
	"github.com/borkshop/termites/internal/proc"
	"github.com/borkshop/termites/internal/sim"
	"github.com/borkshop/termites/internal/termite"
	"github.com/borkshop/termites/internal/view"
)

type session struct {
	opts  options
	id    string
	seed  int64
	sim   *sim.Simulation
	clock proc.Clock
	perf  perf.Perf
	sys   proc.System
	frame view.Grid
}

func newSession(opts options, id string, seed int64, rng termite.Rand) *session {
	r := &session{
		opts: opts,
		id:   id,
		seed: seed,
		sim:  sim.New(opts.width, opts.height, opts.numChips(), opts.numTermites(), rng),
	}
	r.sys.AddProc(&r.clock, r.sim)
	if opts.check {
		r.sys.AddProcFunc(r.checkInvariants)
	}
	name := opts.profName
	if name == "" {
		name = "termites-" + id
	}
	r.perf.Init(name, &r.sys)
	if opts.profName != "" {
		r.perf.Start()
	}
	return r
}

func (r *session) checkInvariants() {
	if err := r.sim.Check(); err != nil {
		panic(fmt.Sprintf("invariant broken at %v: %v", r.clock.Now(), err))
	}
}

// batch runs every step, printing the grid after each if verbose, then the
// summary.
func (r *session) batch(out io.Writer) error {
	bw := bufio.NewWriter(out)
	if r.opts.verbose {
		r.sys.AddProcFunc(func() { writeASCII(bw, r.sim, &r.frame) })
	}
	proc.Run(&r.perf, r.opts.steps)
	err := r.perf.Close()
	r.writeSummary(bw)
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	return err
}

// writeASCII prints the grid with column indices above and row indices to
// the left, both mod 10; frame is scratch space reused across calls.
func writeASCII(w io.Writer, s *sim.Simulation, frame *view.Grid) {
	width, height := s.Grid().Size()
	frame.Resize(point.Pt(width+2, height+1))
	frame.Clear()
	header := make([]byte, width)
	for x := range header {
		header[x] = byte('0' + x%10)
	}
	frame.WriteString(2, 0, string(header))
	for y, line := range s.Lines() {
		frame.WriteString(0, y+1, "%d %s", y%10, line)
	}
	for _, line := range frame.Lines(' ') {
		fmt.Fprintf(w, "%s\n", line)
	}
}

func (r *session) writeSummary(w io.Writer) {
	total := r.perf.Elapsed()
	perStep := r.perf.PerRound()
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "         TERMITE SIMULATION SUMMARY\n")
	fmt.Fprintf(w, "============================================\n")
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "            Grid size: %d-by-%d\n", r.opts.width, r.opts.height)
	fmt.Fprintf(w, " Number of time steps: %d\n", r.perf.Rounds())
	fmt.Fprintf(w, "   Number of termites: %d\n", r.sim.NumTermites())
	fmt.Fprintf(w, " Number of wood chips: %d\n", r.sim.NumChips())
	fmt.Fprintf(w, "Total simulation time: %.6f [s]\n", total.Seconds())
	fmt.Fprintf(w, "   Time per time step: %.6f [ms]\n", perStep.Seconds()*1e3)
	fmt.Fprintf(w, "                 Seed: %d\n", r.seed)
	fmt.Fprintf(w, "               Run id: %s\n", r.id)
	fmt.Fprintf(w, "\n")
}
