package core

import (
	"testing"
	"time"
)

func TestFixedStepFiresOncePerInterval(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(100 * time.Millisecond)
	fs.SetClock(func() time.Time { return clock })

	if fs.ShouldStep() {
		t.Fatal("first poll only primes the clock")
	}
	clock = clock.Add(60 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("step fired early")
	}
	clock = clock.Add(40 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("step should fire after a full interval")
	}

	// A long stall yields one step per poll, not a burst.
	clock = clock.Add(time.Second)
	steps := 0
	for i := 0; i < 5; i++ {
		if fs.ShouldStep() {
			steps++
		}
	}
	if steps != 2 {
		t.Fatalf("expected stalled accumulator to cap at two steps, got %d", steps)
	}
}

func TestFixedStepSetIntervalResets(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(50 * time.Millisecond)
	fs.SetClock(func() time.Time { return clock })
	fs.ShouldStep()
	clock = clock.Add(45 * time.Millisecond)
	fs.ShouldStep()

	fs.SetInterval(200 * time.Millisecond)
	if fs.Interval() != 200*time.Millisecond {
		t.Fatalf("interval=%v", fs.Interval())
	}
	clock = clock.Add(10 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("accumulated time must not carry across interval changes")
	}
}

func TestFixedStepSetClockNilRestoresWallClock(t *testing.T) {
	fs := NewFixedStep(time.Hour)
	fs.SetClock(func() time.Time { return time.Unix(0, 0) })
	fs.SetClock(nil)
	if fs.now == nil {
		t.Fatal("nil clock must fall back to time.Now")
	}
	if fs.ShouldStep() {
		t.Fatal("first poll only primes the clock")
	}
}
