// Package scanlog provides leveled key-value logging for the scanner.
// Recoverable problems (missing locale files, parse errors, unreadable
// source files) are logged here and counted so commands can report a
// non-zero exit when a run completed with warnings.
package scanlog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Logger writes leveled key-value log lines. Warnings and errors are
// counted so callers can distinguish a clean run from a recovered one.
type Logger struct {
	mu       sync.Mutex
	w        io.Writer
	verbose  bool
	warnings int
}

// Log is the global logger instance, writing to stderr by default.
var Log = &Logger{w: os.Stderr}

// Init points the global logger at w. If verbose is false, Debug
// output is suppressed.
func Init(w io.Writer, verbose bool) {
	Log.mu.Lock()
	defer Log.mu.Unlock()
	Log.w = w
	Log.verbose = verbose
	Log.warnings = 0
}

// Warnings returns the number of warning/error lines logged so far.
func (l *Logger) Warnings() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.warnings
}

func (l *Logger) log(level string, msg string, keyvals ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.w == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	line := fmt.Sprintf("%s [%s] %s", timestamp, level, msg)

	// Append key-value pairs
	for i := 0; i < len(keyvals)-1; i += 2 {
		line += fmt.Sprintf(" %v=%v", keyvals[i], keyvals[i+1])
	}

	fmt.Fprintln(l.w, line)
}

// Debug logs a debug message. Dropped unless verbose mode is on.
func (l *Logger) Debug(msg string, keyvals ...any) {
	l.mu.Lock()
	v := l.verbose
	l.mu.Unlock()
	if !v {
		return
	}
	l.log("DEBUG", msg, keyvals...)
}

// Info logs an info message with optional key-value pairs.
func (l *Logger) Info(msg string, keyvals ...any) {
	l.log("INFO", msg, keyvals...)
}

// Warn logs a warning and bumps the warning counter.
func (l *Logger) Warn(msg string, keyvals ...any) {
	l.mu.Lock()
	l.warnings++
	l.mu.Unlock()
	l.log("WARN", msg, keyvals...)
}

// Error logs an error and bumps the warning counter. Errors here are
// recovered ones; fatal errors propagate as Go errors instead.
func (l *Logger) Error(msg string, keyvals ...any) {
	l.mu.Lock()
	l.warnings++
	l.mu.Unlock()
	l.log("ERROR", msg, keyvals...)
}
