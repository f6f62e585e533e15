// Package log provides context-aware diagnostic logging for precommit.
// All log output goes to stderr; primary data output belongs to the
// output package.
package log

import (
	"context"
	"fmt"
	"io"
	"strings"
)

type ctxKey struct{}

// Logger provides diagnostic output with optional debug detail.
type Logger struct {
	out   io.Writer
	debug bool
	quiet bool
}

// New creates a new logger.
func New(out io.Writer, debug, quiet bool) *Logger {
	return &Logger{out: out, debug: debug, quiet: quiet}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard}
}

// Printf writes formatted output unless quiet.
func (l *Logger) Printf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, format, args...)
}

// Println writes a line of output unless quiet.
func (l *Logger) Println(args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintln(l.out, args...)
}

// Debug writes a message with key-value pairs.
// Only prints when debug mode is enabled; quiet wins over debug.
func (l *Logger) Debug(msg string, kv ...any) {
	if !l.debug || l.quiet {
		return
	}
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
	}
	fmt.Fprintln(l.out, b.String())
}

// Command logs an external command execution.
// Only prints when debug mode is enabled.
func (l *Logger) Command(name string, args ...string) {
	if l.debug && !l.quiet {
		fmt.Fprintf(l.out, "$ %s %s\n", name, strings.Join(args, " "))
	}
}

// Debugging returns true if debug mode is enabled.
func (l *Logger) Debugging() bool {
	return l.debug
}

// Writer returns the underlying writer, or io.Discard when quiet so
// streamed subprocess output is suppressed too.
func (l *Logger) Writer() io.Writer {
	if l.quiet {
		return io.Discard
	}
	return l.out
}
