package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptions_defaults(t *testing.T) {
	var errOut bytes.Buffer
	opts, err := parseOptions("termites", nil, &errOut)
	require.NoError(t, err)
	assert.Equal(t, defaultOptions(), opts)
	assert.Equal(t, 100, opts.numTermites())
	assert.Equal(t, 1000, opts.numChips())
	assert.Empty(t, errOut.String())
}

func TestParseOptions(t *testing.T) {
	var errOut bytes.Buffer
	opts, err := parseOptions("termites", []string{
		"-w", "40", "-h", "20",
		"-t", "0.05", "-c", "0.25",
		"-s", "12", "-v",
		"-seed", "99", "-check", "-prof", "p", "-log", "x.log",
	}, &errOut)
	require.NoError(t, err)
	assert.Equal(t, options{
		width:           40,
		height:          20,
		termiteFraction: 0.05,
		chipFraction:    0.25,
		steps:           12,
		verbose:         true,
		seed:            99,
		check:           true,
		profName:        "p",
		logFile:         "x.log",
	}, opts)
	assert.Equal(t, 40, opts.numTermites())
	assert.Equal(t, 200, opts.numChips())
}

func TestParseOptions_help(t *testing.T) {
	for _, args := range [][]string{
		{"-?"},
		{"-w", "10", "-?"},
		{"-help"},
	} {
		var errOut bytes.Buffer
		_, err := parseOptions("termites", args, &errOut)
		assert.Equal(t, errHelp, err, "%q", args)
		assert.Contains(t, errOut.String(), "Usage: termites [options]")
		assert.Contains(t, errOut.String(), "-h N         Set the height of the grid to N (default: 100)")
	}
}

func TestParseOptions_invalid(t *testing.T) {
	for _, tc := range []struct {
		name string
		args []string
		err  string
	}{
		{"zero width", []string{"-w", "0"}, "invalid grid size 0x100"},
		{"negative height", []string{"-h", "-5"}, "invalid grid size 100x-5"},
		{"zero steps", []string{"-s", "0"}, "invalid number of time steps 0"},
		{"termite fraction one", []string{"-t", "1"}, "termite fraction 1 not in (0, 1)"},
		{"chip fraction zero", []string{"-c", "0"}, "wood chip fraction 0 not in (0, 1)"},
		{"no termites", []string{"-w", "5", "-h", "5", "-t", "0.01"}, "termite fraction 0.01 yields no termites on a 5x5 grid"},
		{"no chips", []string{"-w", "5", "-h", "5", "-t", "0.1", "-c", "0.01"}, "wood chip fraction 0.01 yields no wood chips on a 5x5 grid"},
		{"crowded", []string{"-t", "0.25", "-c", "0.25"}, "2500 termites + 2500 wood chips leave too little room on a 100x100 grid"},
		{"stray argument", []string{"-w", "10", "extra"}, `unexpected argument "extra"`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var errOut bytes.Buffer
			_, err := parseOptions("termites", tc.args, &errOut)
			assert.EqualError(t, err, tc.err)
		})
	}
}

func TestParseOptions_malformed(t *testing.T) {
	for _, args := range [][]string{
		{"-w"},
		{"-w", "wide"},
		{"-t", "lots"},
		{"-x"},
	} {
		var errOut bytes.Buffer
		_, err := parseOptions("termites", args, &errOut)
		assert.Error(t, err, "%q", args)
		assert.NotEqual(t, errHelp, err)
		assert.Contains(t, errOut.String(), "Usage: termites [options]", "%q", args)
	}
}
