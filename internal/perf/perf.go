// Package perf measures a proc.Proc: it times every round, keeps a window of
// recent samples, and can capture pprof profiles while running.
package perf

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime/pprof"
	"syscall"
	"time"

	"github.com/borkshop/termites/internal/proc"
)

const (
	numSamples = 64
)

// Perf is a proc.Proc that collects timing data about the Proc it wraps.
type Perf struct {
	proc.Proc

	outputBase    string
	shouldProfile bool
	profiling     bool
	err           error
	cpuProfF      *os.File
	profDebug     int
	profDir       string

	round   int
	i       int
	total   time.Duration
	samples [numSamples]struct{ start, end time.Time }
}

// Init sets up the perf system around the given Proc; any profiles are
// written into a timestamped directory with an optional name prefix.
func (perf *Perf) Init(name string, p proc.Proc) {
	const timeFormat = "20060102T150405Z0700"
	perf.profDebug = 2
	perf.Proc = p
	if nowf := time.Now().Format(timeFormat); name == "" {
		perf.outputBase = fmt.Sprintf("prof-%s", nowf)
	} else {
		perf.outputBase = fmt.Sprintf("%s-prof-%s", name, nowf)
	}
}

// OutputBase returns the directory that profiles are written under; each
// capture gets its own t<round> subdirectory, next to a copy of the executable.
func (perf *Perf) OutputBase() string { return perf.outputBase }

// Process runs a round of the wrapped Proc, timing it.
func (perf *Perf) Process() {
	perf.round++

	if err := perf.maybeProfile(); err != nil {
		perf.err = err
		_ = perf.stopProfiling()
	}

	if perf.Proc != nil {
		sample := &perf.samples[perf.i]
		sample.start = time.Now()
		perf.Proc.Process()
		sample.end = time.Now()
		perf.total += sample.end.Sub(sample.start)
	}

	perf.i = (perf.i + 1) % numSamples
}

// Rounds returns how many rounds have been processed.
func (perf *Perf) Rounds() int { return perf.round }

// Elapsed returns the total time spent inside the wrapped Proc.
func (perf *Perf) Elapsed() time.Duration { return perf.total }

// PerRound returns the mean time spent per round.
func (perf *Perf) PerRound() time.Duration {
	if perf.round == 0 {
		return 0
	}
	return perf.total / time.Duration(perf.round)
}

// Last returns how long the most recent round took.
func (perf *Perf) Last() time.Duration {
	if perf.round == 0 {
		return 0
	}
	s := perf.samples[perf.lastI()]
	return s.end.Sub(s.start)
}

// Recent returns the mean round time over the sample window.
func (perf *Perf) Recent() time.Duration {
	n := perf.round
	if n > numSamples {
		n = numSamples
	}
	if n == 0 {
		return 0
	}
	var sum time.Duration
	for i, j := 0, perf.lastI(); i < n; i++ {
		sum += perf.samples[j].end.Sub(perf.samples[j].start)
		if j--; j < 0 {
			j += numSamples
		}
	}
	return sum / time.Duration(n)
}

func (perf *Perf) lastI() int {
	i := perf.i - 1
	if i < 0 {
		i += numSamples
	}
	return i
}

// Start requests profiling to start, this happens during the next Process
// round.
func (perf *Perf) Start() { perf.shouldProfile = true }

// Stop requests profiling to stop, this happens during the next Process
// round.
func (perf *Perf) Stop() { perf.shouldProfile = false }

// Close cleans up the profiler, returning any error.
func (perf *Perf) Close() error {
	if serr := perf.stopProfiling(); perf.err == nil {
		perf.err = serr
	}
	return perf.err
}

// Err return any profiling error encountered; if this is non-nil, then
// profiling will not start.
func (perf *Perf) Err() error { return perf.err }

// Running returns whether profiling has been requested, and whether it
// actually active.
func (perf *Perf) Running() (should, are bool) {
	return perf.shouldProfile,
		perf.profiling
}

func (perf *Perf) maybeProfile() error {
	if perf.err != nil {
		return perf.err
	} else if perf.profiling && !perf.shouldProfile {
		return perf.stopProfiling()
	} else if !perf.profiling && perf.shouldProfile {
		return perf.startProfiling()
	}
	return nil
}

func (perf *Perf) startProfiling() error {
	if perf.profiling {
		return nil
	}
	if err := perf.copyExecutable(); err != nil {
		return err
	}
	perf.profDir = path.Join(perf.outputBase, fmt.Sprintf("t%d", perf.round))
	f, err := perf.createOutput("cpu")
	if err != nil {
		return err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return err
	}
	perf.cpuProfF = f
	perf.profiling = true
	return nil
}

func (perf *Perf) stopProfiling() (err error) {
	if perf.cpuProfF != nil {
		pprof.StopCPUProfile()
		err = perf.cpuProfF.Close()
		perf.cpuProfF = nil
		if err != nil {
			err = fmt.Errorf("failed to close \"cpu\" output file: %v", err)
		}
		if terr := perf.takeProfile(); err == nil {
			err = terr
		}
	}
	perf.shouldProfile = false
	perf.profiling = false
	return err
}

// takeProfile snapshots every other registered profile (heap, goroutine,
// etc) alongside the cpu profile.
func (perf *Perf) takeProfile() error {
	for _, prof := range pprof.Profiles() {
		f, err := perf.createOutput(prof.Name())
		if err != nil {
			return err
		}
		err = prof.WriteTo(f, perf.profDebug)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (perf *Perf) copyExecutable() (rerr error) {
	dstName := path.Join(perf.outputBase, "exe")
	if _, err := os.Stat(dstName); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	dst, err := createMkdirAll(dstName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := dst.Close(); rerr == nil {
			rerr = cerr
		}
	}()

	srcName, err := os.Executable()
	if err != nil {
		return err
	}
	src, err := os.Open(srcName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := src.Close(); rerr == nil {
			rerr = cerr
		}
	}()

	_, err = io.Copy(dst, src)
	return err
}

// createOutput creates a file under the directory of the current capture,
// named for the round it started in.
func (perf *Perf) createOutput(name string) (*os.File, error) {
	pth := path.Join(perf.profDir, name)
	f, err := createMkdirAll(pth)
	if err != nil {
		err = fmt.Errorf("failed to create %q output file: %v", name, err)
	}
	return f, err
}

func createMkdirAll(name string) (*os.File, error) {
	f, err := os.Create(name)
	if pe, ok := err.(*os.PathError); ok && pe.Err == syscall.ENOENT {
		err = os.MkdirAll(path.Dir(name), 0777)
		if err == nil {
			return os.Create(name)
		}
	}
	return f, err
}
