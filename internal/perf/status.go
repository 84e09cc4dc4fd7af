package perf

import (
	"fmt"
	"runtime"
)

// Status returns a one line summary: round count, recent round time, heap
// usage, and a profiling indicator.
func (perf *Perf) Status() string {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return fmt.Sprintf("%c t=%d Δt=%v heap=%v/%v",
		perf.status(), perf.round, perf.Recent(),
		siBytes(ms.HeapAlloc), ms.HeapObjects)
}

func (perf *Perf) status() rune {
	if perf.err != nil {
		return '■'
	}
	if perf.profiling {
		return '◉'
	}
	if perf.shouldProfile {
		return '◎'
	}
	return '○'
}

func siBytes(n uint64) string {
	if n < 1024 {
		return fmt.Sprintf("%vB", n)
	}
	if n < 1024*1024 {
		return fmt.Sprintf("%.1fKiB", float64(n)/1024.0)
	}
	if n < 1024*1024*1024 {
		return fmt.Sprintf("%.1fMiB", float64(n)/(1024.0*1024.0))
	}
	return fmt.Sprintf("%.1fGiB", float64(n)/(1024.0*1024.0*1024.0))
}
