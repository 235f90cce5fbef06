package debug

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Logger writes diagnostic lines when enabled. A nil Logger is silent.
type Logger struct {
	enabled bool
	out     io.Writer
	start   time.Time
	now     func() time.Time
}

// New returns a logger writing to stderr when enabled.
func New(enabled bool) *Logger {
	return NewWithWriter(enabled, os.Stderr)
}

// NewWithWriter returns a logger writing to out when enabled.
func NewWithWriter(enabled bool, out io.Writer) *Logger {
	l := &Logger{enabled: enabled, out: out, now: time.Now}
	l.start = l.now()
	return l
}

// Enabled reports whether lines are written.
func (l *Logger) Enabled() bool {
	return l != nil && l.enabled
}

// Infof writes a formatted log line, prefixed with the time elapsed since
// the logger was created.
func (l *Logger) Infof(format string, args ...any) {
	if !l.Enabled() {
		return
	}
	elapsed := l.now().Sub(l.start).Round(time.Microsecond)
	_, _ = fmt.Fprintf(l.out, "lsmark [%s] "+format+"\n", append([]any{elapsed}, args...)...)
}
