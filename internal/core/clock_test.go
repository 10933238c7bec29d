package core

import (
	"testing"
	"time"
)

// fakeClock returns a PausableClock whose wall time is moved by the returned func.
func fakeClock() (*PausableClock, func(time.Duration)) {
	wall := time.Unix(1000, 0)
	c := &PausableClock{
		start: wall,
		since: func(t time.Time) time.Duration { return wall.Sub(t) },
	}
	return c, func(d time.Duration) { wall = wall.Add(d) }
}

func TestPausableClockAdvances(t *testing.T) {
	c, tick := fakeClock()

	if c.Now() != 0 {
		t.Fatalf("Now() = %d, expected 0", c.Now())
	}
	tick(250 * time.Millisecond)
	if c.Now() != 250 {
		t.Errorf("Now() = %d, expected 250", c.Now())
	}
}

func TestPausableClockExcludesPause(t *testing.T) {
	c, tick := fakeClock()

	tick(100 * time.Millisecond)
	c.Pause()
	if !c.Paused() {
		t.Fatal("clock should report paused")
	}
	tick(5 * time.Second)
	if c.Now() != 100 {
		t.Errorf("Now() while paused = %d, expected 100", c.Now())
	}

	c.Resume()
	tick(50 * time.Millisecond)
	if c.Now() != 150 {
		t.Errorf("Now() after resume = %d, expected 150", c.Now())
	}

	// Double pause/resume must not skew the clock.
	c.Pause()
	c.Pause()
	tick(time.Second)
	c.Resume()
	c.Resume()
	if c.Now() != 150 {
		t.Errorf("Now() after double pause = %d, expected 150", c.Now())
	}
}

func TestManualClock(t *testing.T) {
	var c ManualClock
	c.Advance(4001)
	if c.Now() != 4001 {
		t.Errorf("Now() = %d, expected 4001", c.Now())
	}
}
