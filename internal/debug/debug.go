// Package debug provides opt-in trace output for the matching
// pipeline. Tracing is off unless the caller enables it, so the hot
// path pays only a bool check.
package debug

import (
	"fmt"
	"log"
	"time"
)

// Output logs a formatted trace line when tracing is enabled.
func Output(enabled bool, format string, args ...interface{}) {
	if !enabled {
		return
	}
	timestamp := time.Now().Format("15:04:05.000")
	log.Printf("[%s] %s", timestamp, fmt.Sprintf(format, args...))
}

// Timing logs the duration of an operation when tracing is enabled.
// Use with defer: defer debug.Timing(enabled, "search")().
func Timing(enabled bool, operation string) func() {
	if !enabled {
		return func() {}
	}

	start := time.Now()
	Output(enabled, "starting: %s", operation)

	return func() {
		Output(enabled, "completed: %s (took %v)", operation, time.Since(start))
	}
}
