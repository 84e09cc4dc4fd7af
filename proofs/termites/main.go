/*
Command termites simulates termites gathering wood chips into piles.

Termites wander a toroidal grid at random. A termite that finds itself on a
chip picks it up; one that carries a chip and bumps into another drops its
load and turns around. Nothing else coordinates them, yet over a few thousand
steps the scattered chips end up in a handful of piles.

By default the simulation runs flat out and prints a timing summary; -v prints
the grid after every step, and -tui watches it live.

*/
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell"
	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"github.com/borkshop/termites/internal/view"
)

const (
	watchInterval = 50 * time.Millisecond
	logCap        = 1000
)

func main() {
	program := filepath.Base(os.Args[0])
	opts, err := parseOptions(program, os.Args[1:], os.Stderr)
	if err == errHelp {
		os.Exit(0)
	} else if err != nil {
		log.Fatalln(err)
	}
	if err := run(opts); err != nil {
		log.Fatalln(err)
	}
}

func run(opts options) (rerr error) {
	var logs view.Logs
	logs.Init(logCap)

	if opts.logFile != "" {
		f, err := os.Create(opts.logFile)
		if err != nil {
			return fmt.Errorf("failed to create log file: %v", err)
		}
		defer func() {
			if cerr := f.Close(); rerr == nil {
				rerr = cerr
			}
		}()
		log.SetOutput(f)
	} else if opts.tui {
		// the screen belongs to the view; replay diagnostics once it lets go
		log.SetOutput(&logs)
		defer func() {
			log.SetOutput(os.Stderr)
			for _, line := range logs.Lines() {
				fmt.Fprintln(os.Stderr, line)
			}
		}()
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(uint64(seed)))
	id := uuid.New().String()

	log.Printf("run %s: %dx%d grid, %d termites, %d wood chips, %d steps, seed %d",
		id, opts.width, opts.height, opts.numTermites(), opts.numChips(), opts.steps, seed)
	r := newSession(opts, id, seed, rng)
	if opts.profName != "" {
		log.Printf("profiling into %q", r.perf.OutputBase())
	}

	if opts.tui {
		scr, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		if err := newWatcher(r, watchInterval, &logs).watch(scr); err != nil {
			return err
		}
		r.writeSummary(os.Stdout)
	} else if err := r.batch(os.Stdout); err != nil {
		return err
	}

	log.Printf("run %s: %d steps in %v", id, r.perf.Rounds(), r.perf.Elapsed())
	return nil
}
