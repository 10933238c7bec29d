package core

import (
	"sync"
	"time"
)

// Clock supplies a monotonic "now" in milliseconds.
type Clock interface {
	Now() int64
}

// PausableClock measures wall time since creation, excluding paused spans.
type PausableClock struct {
	mu       sync.Mutex
	start    time.Time
	pausedAt time.Time
	paused   bool
	idle     time.Duration
	since    func(time.Time) time.Duration
}

// NewPausableClock starts a clock at zero.
func NewPausableClock() *PausableClock {
	return &PausableClock{start: time.Now(), since: time.Since}
}

// Now returns elapsed unpaused milliseconds.
func (c *PausableClock) Now() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	elapsed := c.since(c.start) - c.idle
	if c.paused {
		elapsed -= c.since(c.pausedAt)
	}
	return elapsed.Milliseconds()
}

// Pause freezes the clock. Pausing twice is a no-op.
func (c *PausableClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = c.start.Add(c.since(c.start))
}

// Resume unfreezes the clock.
func (c *PausableClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.paused {
		return
	}
	c.idle += c.since(c.pausedAt)
	c.paused = false
}

// Paused reports whether the clock is frozen.
func (c *PausableClock) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// ManualClock is a Clock driven by hand, for tests and replays.
type ManualClock struct {
	Millis int64
}

// Now returns the current manual time.
func (c *ManualClock) Now() int64 {
	return c.Millis
}

// Advance moves the clock forward by ms.
func (c *ManualClock) Advance(ms int64) {
	c.Millis += ms
}
