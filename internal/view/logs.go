package view

import (
	"bytes"
	"fmt"
	"sync"
)

// Logs is a bounded buffer of log messages, oldest first. It is an io.Writer
// so that it can stand in as log output while a terminal UI owns the screen.
type Logs struct {
	mu      sync.Mutex
	buf     []string
	partial []byte
}

// Init initializes the log buffer, allocating the given capacity.
func (logs *Logs) Init(logCap int) {
	if logCap <= 0 {
		panic(fmt.Sprintf("invalid log capacity %d", logCap))
	}
	logs.buf = make([]string, 0, logCap)
}

// Write appends every complete line in p as a message; any trailing partial
// line is held until a later write completes it.
func (logs *Logs) Write(p []byte) (int, error) {
	logs.mu.Lock()
	defer logs.mu.Unlock()
	n := len(p)
	for len(p) > 0 {
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			logs.partial = append(logs.partial, p...)
			break
		}
		if len(logs.partial) > 0 {
			logs.partial = append(logs.partial, p[:i]...)
			logs.add(string(logs.partial))
			logs.partial = logs.partial[:0]
		} else {
			logs.add(string(p[:i]))
		}
		p = p[i+1:]
	}
	return n, nil
}

func (logs *Logs) add(mess string) {
	if cap(logs.buf) == 0 {
		panic("log buffer used before Init")
	}
	if len(logs.buf) < cap(logs.buf) {
		logs.buf = append(logs.buf, mess)
	} else {
		copy(logs.buf, logs.buf[1:])
		logs.buf[len(logs.buf)-1] = mess
	}
}

// Lines returns a copy of the buffered messages.
func (logs *Logs) Lines() []string {
	logs.mu.Lock()
	defer logs.mu.Unlock()
	return append([]string(nil), logs.buf...)
}
