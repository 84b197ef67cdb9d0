package console

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock lets tests move time forward without sleeping.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestLog(quiet bool) (*Log, *bytes.Buffer, *fakeClock) {
	buf := &bytes.Buffer{}
	clock := &fakeClock{t: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	log := NewLog(buf, "gitmirror", quiet)
	log.SetClock(clock.Now)
	return log, buf, clock
}

func TestWriteOutsideScopeIsDirect(t *testing.T) {
	log, buf, _ := newTestLog(false)

	log.Write("hello\n")
	assert.Equal(t, "hello\n", buf.String())
}

func TestLoglnAddsTag(t *testing.T) {
	log, buf, _ := newTestLog(false)

	log.Logln("updating origin/linux")
	assert.Equal(t, "gitmirror: updating origin/linux\n", buf.String())
}

func TestTraceRespectsQuiet(t *testing.T) {
	log, buf, _ := newTestLog(true)
	log.Trace("not shown")
	assert.Empty(t, buf.String())

	log, buf, _ = newTestLog(false)
	log.Trace("shown")
	assert.Equal(t, "gitmirror: shown\n", buf.String())
}

func TestSilentScopeProducesNoOutput(t *testing.T) {
	log, buf, _ := newTestLog(false)

	err := log.Suppress(func() error { return nil })
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestFastScopeDiscardsBuffer(t *testing.T) {
	log, buf, _ := newTestLog(false)

	err := log.Suppress(func() error {
		log.Logln("cloning")
		log.Write("progress...\n")
		return nil
	})
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestSlowScopeFlushesOnWriteAfterDeadline(t *testing.T) {
	log, buf, clock := newTestLog(false)

	err := log.Suppress(func() error {
		log.Logln("cloning")
		assert.Empty(t, buf.String())

		clock.Advance(graceWindow + time.Second)

		// Nothing has flushed yet: only a write checks the deadline.
		assert.Empty(t, buf.String())

		log.Write("")
		assert.Equal(t, "gitmirror: cloning\n", buf.String())

		// Later writes go straight through.
		log.Write("more\n")
		assert.Equal(t, "gitmirror: cloning\nmore\n", buf.String())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "gitmirror: cloning\nmore\n", buf.String())
}

func TestFailedScopeFlushesBuffer(t *testing.T) {
	log, buf, _ := newTestLog(false)

	boom := errors.New("fetch failed")
	err := log.Suppress(func() error {
		log.Logln("fetching")
		return boom
	})
	assert.Equal(t, boom, err)
	assert.Equal(t, "gitmirror: fetching\n", buf.String())
}

func TestSelectTimeout(t *testing.T) {
	log, _, clock := newTestLog(false)

	_, ok := log.SelectTimeout()
	assert.False(t, ok, "no window armed outside a scope")

	_ = log.Suppress(func() error {
		d, ok := log.SelectTimeout()
		assert.True(t, ok)
		assert.Equal(t, graceWindow, d)

		clock.Advance(2 * time.Second)
		d, ok = log.SelectTimeout()
		assert.True(t, ok)
		assert.Equal(t, graceWindow-2*time.Second, d)

		clock.Advance(graceWindow)
		d, ok = log.SelectTimeout()
		assert.True(t, ok)
		assert.Equal(t, time.Duration(0), d, "remaining time clamps to zero")

		// Once a write notices the deadline, the window is gone.
		log.Write("")
		_, ok = log.SelectTimeout()
		assert.False(t, ok)
		return nil
	})
}

func TestNestedSuppressPanics(t *testing.T) {
	log, _, _ := newTestLog(false)

	assert.Panics(t, func() {
		_ = log.Suppress(func() error {
			return log.Suppress(func() error { return nil })
		})
	})
}

func TestScopeReusableAfterExit(t *testing.T) {
	log, buf, _ := newTestLog(false)

	require.NoError(t, log.Suppress(func() error { return nil }))
	err := log.Suppress(func() error {
		log.Logln("second scope")
		return errors.New("x")
	})
	require.Error(t, err)
	assert.Equal(t, "gitmirror: second scope\n", buf.String())
}
