// Package debug carries the debug logging toggle of the mmr3 tooling.
package debug

import (
	"io"
	"log"
	"os"
	"sync/atomic"
)

var (
	enabled int32 = 0
	logger        = log.New(os.Stderr, "mmr3: ", log.LstdFlags)
)

// Toggle turns on/off debug mode
func Toggle(on bool) {
	val := int32(0)
	if on {
		val = 1
	}
	atomic.StoreInt32(&enabled, val)
}

// Enabled returns true if debug mode is on.
func Enabled() bool {
	return atomic.LoadInt32(&enabled) == 1
}

// SetOutput sets the destination of debug logs, which defaults to stderr.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Do executes a function if debug is enabled, usually for side effects.
func Do(f func()) {
	if !Enabled() {
		return
	}
	f()
}

// Format a log line and writes it to the output if debug is enabled
func Format(format string, args ...interface{}) {
	if !Enabled() {
		return
	}
	logger.Printf(format, args...)
}
