package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

var errHelp = errors.New("help requested")

type options struct {
	width, height   int
	termiteFraction float64
	chipFraction    float64
	steps           int
	verbose         bool
	help            bool

	seed     int64
	tui      bool
	check    bool
	profName string
	logFile  string
}

func defaultOptions() options {
	return options{
		width:           100,
		height:          100,
		termiteFraction: 0.01,
		chipFraction:    0.10,
		steps:           5000,
	}
}

func usage(w io.Writer, program string) {
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Usage: %s [options]\n", program)
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Options:\n")
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "  -w N         Set the width of the grid to N (default: 100)\n")
	fmt.Fprintf(w, "  -h N         Set the height of the grid to N (default: 100)\n")
	fmt.Fprintf(w, "  -t F         Set the fraction of grid cells occupied by termites to F (default: 0.01)\n")
	fmt.Fprintf(w, "  -c F         Set the fraction of grid cells occupied by wood chips to F (default: 0.10)\n")
	fmt.Fprintf(w, "  -s N         Set the number of time steps to N (default: 5000)\n")
	fmt.Fprintf(w, "  -v           Print the grid after every time step. Warning: Use only for small grids.\n")
	fmt.Fprintf(w, "  -seed N      Seed the random number generator with N (default: time based)\n")
	fmt.Fprintf(w, "  -check       Verify simulation invariants after every time step\n")
	fmt.Fprintf(w, "  -tui         Watch the simulation live in the terminal\n")
	fmt.Fprintf(w, "  -prof NAME   Write pprof profiles under a NAME-prof-TIMESTAMP directory\n")
	fmt.Fprintf(w, "  -log FILE    Write diagnostics to FILE\n")
	fmt.Fprintf(w, "  -?           Print this help.\n")
	fmt.Fprintf(w, "\n")
}

// parseOptions parses command line arguments (sans program name); it returns
// errHelp if help was asked for.
func parseOptions(program string, args []string, errOut io.Writer) (options, error) {
	opts := defaultOptions()

	fs := flag.NewFlagSet(program, flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() { usage(errOut, program) }

	fs.IntVar(&opts.width, "w", opts.width, "grid width")
	fs.IntVar(&opts.height, "h", opts.height, "grid height")
	fs.Float64Var(&opts.termiteFraction, "t", opts.termiteFraction, "termite fraction")
	fs.Float64Var(&opts.chipFraction, "c", opts.chipFraction, "wood chip fraction")
	fs.IntVar(&opts.steps, "s", opts.steps, "time steps")
	fs.BoolVar(&opts.verbose, "v", false, "print grid every step")
	fs.BoolVar(&opts.help, "?", false, "print help")
	fs.Int64Var(&opts.seed, "seed", 0, "random seed")
	fs.BoolVar(&opts.check, "check", false, "verify invariants every step")
	fs.BoolVar(&opts.tui, "tui", false, "live terminal view")
	fs.StringVar(&opts.profName, "prof", "", "profile name")
	fs.StringVar(&opts.logFile, "log", "", "diagnostic log file")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return opts, errHelp
		}
		return opts, err
	}
	if opts.help {
		usage(errOut, program)
		return opts, errHelp
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	return opts, opts.validate()
}

func (opts options) validate() error {
	if opts.width <= 0 || opts.height <= 0 {
		return fmt.Errorf("invalid grid size %dx%d", opts.width, opts.height)
	}
	if !(opts.termiteFraction > 0 && opts.termiteFraction < 1) {
		return fmt.Errorf("termite fraction %v not in (0, 1)", opts.termiteFraction)
	}
	if !(opts.chipFraction > 0 && opts.chipFraction < 1) {
		return fmt.Errorf("wood chip fraction %v not in (0, 1)", opts.chipFraction)
	}
	if opts.steps <= 0 {
		return fmt.Errorf("invalid number of time steps %d", opts.steps)
	}
	if opts.numTermites() <= 0 {
		return fmt.Errorf("termite fraction %v yields no termites on a %dx%d grid",
			opts.termiteFraction, opts.width, opts.height)
	}
	if opts.numChips() <= 0 {
		return fmt.Errorf("wood chip fraction %v yields no wood chips on a %dx%d grid",
			opts.chipFraction, opts.width, opts.height)
	}
	if opts.numTermites()+opts.numChips() >= opts.width*opts.height/2 {
		return fmt.Errorf("%d termites + %d wood chips leave too little room on a %dx%d grid",
			opts.numTermites(), opts.numChips(), opts.width, opts.height)
	}
	return nil
}

func (opts options) numTermites() int {
	return int(float64(opts.width*opts.height) * opts.termiteFraction)
}

func (opts options) numChips() int {
	return int(float64(opts.width*opts.height) * opts.chipFraction)
}
