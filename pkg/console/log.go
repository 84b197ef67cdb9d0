package console

import (
	"bytes"
	"io"
	"time"
)

// graceWindow is how long a suppression scope may run before its buffered
// output becomes visible.
const graceWindow = 5 * time.Second

// Log is the operator-facing output sink. All text is written with the
// program tag; Trace output disappears entirely in quiet mode.
//
// A suppression scope (see Suppress) delays everything written inside it
// for the grace window. Scopes that finish quickly and successfully
// therefore produce no output at all; slow or failing ones become visible.
//
// Log is meant to be constructed once per invocation and handed to every
// component that writes to the operator.
type Log struct {
	out   io.Writer
	tag   string
	quiet bool

	now func() time.Time

	scopeOpen bool
	armed     bool
	deadline  time.Time
	buf       bytes.Buffer
}

// NewLog creates a Log writing to out. The tag is prepended by Logln and
// Trace; quiet silences Trace.
func NewLog(out io.Writer, tag string, quiet bool) *Log {
	return &Log{
		out:   out,
		tag:   tag,
		quiet: quiet,
		now:   time.Now,
	}
}

// SetClock replaces the time source. Tests use it to drive the suppression
// deadline without sleeping.
func (l *Log) SetClock(now func() time.Time) {
	l.now = now
}

// Quiet reports whether trace output is silenced.
func (l *Log) Quiet() bool {
	return l.quiet
}

// Tag returns the program tag used to attribute output.
func (l *Log) Tag() string {
	return l.tag
}

// Write emits s, or buffers it while a suppression window is armed. Every
// call first checks whether the window's deadline has passed and, if so,
// flushes the buffer and disarms; this check-on-write is the only timeout
// mechanism, which is why ProcessSupervisor calls Write("") when a silent
// child makes it wake up on a timer.
func (l *Log) Write(s string) {
	if l.armed && l.now().After(l.deadline) {
		l.flush()
	}
	if l.armed {
		l.buf.WriteString(s)
		return
	}
	io.WriteString(l.out, s)
}

// Logln writes a tagged line through the normal Write rules.
func (l *Log) Logln(s string) {
	l.Write(l.tag + ": " + s + "\n")
}

// Trace writes a tagged line unless quiet mode is on.
func (l *Log) Trace(s string) {
	if l.quiet {
		return
	}
	l.Logln(s)
}

// Suppress runs fn inside a suppression window. Output written during fn is
// buffered; if fn returns quickly and successfully the buffer is discarded,
// if fn returns an error the buffer is flushed before the error is passed
// through, and if fn outlives the grace window the buffer is flushed by the
// first Write after the deadline.
//
// Scopes must not nest; doing so is a contract violation and panics.
func (l *Log) Suppress(fn func() error) error {
	if l.scopeOpen {
		panic("console: nested suppression scope")
	}
	l.scopeOpen = true
	l.armed = true
	l.deadline = l.now().Add(graceWindow)

	err := fn()

	if err != nil {
		l.flush()
	} else {
		l.buf.Reset()
	}
	l.armed = false
	l.scopeOpen = false
	return err
}

// SelectTimeout returns how long a caller may block before it must call
// Write again so a pending deadline can fire. ok is false when no window is
// armed and the caller may block indefinitely.
func (l *Log) SelectTimeout() (d time.Duration, ok bool) {
	if !l.armed {
		return 0, false
	}
	d = l.deadline.Sub(l.now())
	if d < 0 {
		d = 0
	}
	return d, true
}

func (l *Log) flush() {
	if l.buf.Len() > 0 {
		io.Copy(l.out, &l.buf)
	}
	l.buf.Reset()
	l.armed = false
}
