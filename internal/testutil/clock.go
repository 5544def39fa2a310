package testutil

import (
	"sync"
	"time"
)

// Epoch is the default base time for test clocks.
var Epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// FixedClock always returns the same instant.
//
// Thread-safety: FixedClock is immutable and safe for concurrent use.
type FixedClock struct {
	t time.Time
}

// NewFixedClock creates a clock frozen at t.
func NewFixedClock(t time.Time) FixedClock {
	return FixedClock{t: t.UTC()}
}

// Now implements document.Clock.
func (c FixedClock) Now() time.Time {
	return c.t
}

// SteppingClock is a deterministic monotonic clock for tests.
//
// Each call to Now advances the clock by a fixed step, so successive actions
// get distinct timestamps and therefore distinct ids. The same scenario run
// against a fresh (or Reset) clock yields identical timestamps.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type SteppingClock struct {
	mu   sync.Mutex
	base time.Time
	step time.Duration
	seq  int64
}

// NewSteppingClock creates a clock whose first Now returns base+step.
func NewSteppingClock(base time.Time, step time.Duration) *SteppingClock {
	return &SteppingClock{base: base.UTC(), step: step}
}

// NewDefaultSteppingClock starts at Epoch and advances one second per call.
func NewDefaultSteppingClock() *SteppingClock {
	return NewSteppingClock(Epoch, time.Second)
}

// Now advances the clock one step and returns the new time.
func (c *SteppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	return c.base.Add(time.Duration(c.seq) * c.step)
}

// Current returns the last time handed out without advancing.
func (c *SteppingClock) Current() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.base.Add(time.Duration(c.seq) * c.step)
}

// Steps returns how many times Now has been called since the last Reset.
func (c *SteppingClock) Steps() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq
}

// Reset rewinds the clock to its base.
func (c *SteppingClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq = 0
}
