package proc

import (
	"fmt"
	"math"
)

// Time counts processing ticks.
type Time uint64

// String the time, either as "tNNN" or "EoT" if maxed out.
func (t Time) String() string {
	if t == math.MaxUint64 {
		return "EoT"
	}
	return fmt.Sprintf("t%d", uint64(t))
}

// Clock is a Proc that counts how many ticks have been processed; put it
// first in a System so that Now reads as the current tick number.
type Clock struct {
	now Time
}

// Now returns the current time.
func (c *Clock) Now() Time { return c.now }

// Process advances the clock one tick; panics if the count would overflow.
func (c *Clock) Process() {
	if c.now == math.MaxUint64-1 {
		panic("The End is Now!")
	}
	c.now++
}
