// Package logger prints diagnostics for the calories CLI. Debug and Info
// output appears only with --verbose; warnings about the diary's shape are
// always written.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables debug and info output.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// SetOutput redirects all log output. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message when verbose.
func Debug(format string, args ...any) {
	logf(true, "[DEBUG] ", format, args...)
}

// Info prints a message when verbose.
func Info(format string, args ...any) {
	logf(true, "[INFO] ", format, args...)
}

// Warn always prints.
func Warn(format string, args ...any) {
	logf(false, "[WARN] ", format, args...)
}

// Section prints a header line when verbose.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

func logf(needsVerbose bool, prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if needsVerbose && !verbose {
		return
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}
