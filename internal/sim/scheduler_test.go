package sim

import (
	"context"
	"sync"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"

	"conways-life/internal/config"
)

func TestManualScheduler(t *testing.T) {
	m := &Manual{}
	if _, ok := m.Fire(); ok {
		t.Fatal("idle scheduler fired")
	}
	h := m.Start(30 * time.Millisecond)
	tick, ok := m.Fire()
	if !ok || tick.From != h {
		t.Fatal("expected tick from the active handle")
	}
	if d, active := m.Active(); !active || d != 30*time.Millisecond {
		t.Fatalf("active=%v interval=%v", active, d)
	}
	h.Stop()
	if _, ok := m.Fire(); ok {
		t.Fatal("stopped scheduler fired")
	}
	if starts, stops := m.Counts(); starts != 1 || stops != 1 {
		t.Fatalf("starts=%d stops=%d", starts, stops)
	}
}

func TestManualDrivesController(t *testing.T) {
	m := &Manual{}
	cfg := config.DefaultConfig()
	cfg.Seed = []int{0}
	c, err := New(cfg, m)
	if err != nil {
		t.Fatal(err)
	}
	dispatch(t, c, Play{})
	tick, ok := m.Fire()
	if !ok {
		t.Fatal("Play did not start the scheduler")
	}
	dispatch(t, c, tick)
	if c.Running() {
		t.Fatal("expected auto-pause")
	}
	if _, ok := m.Fire(); ok {
		t.Fatal("auto-pause did not stop the scheduler")
	}
}

func TestFrameScheduler(t *testing.T) {
	f := NewFrameScheduler()
	if _, ok := f.Due(); ok {
		t.Fatal("idle scheduler is due")
	}
	clock := time.Unix(0, 0)
	f.step.SetClock(func() time.Time { return clock })

	h := f.Start(100 * time.Millisecond)
	if _, ok := f.Due(); ok {
		t.Fatal("first frame only primes the clock")
	}
	clock = clock.Add(100 * time.Millisecond)
	tick, ok := f.Due()
	if !ok || tick.From != h {
		t.Fatal("expected a tick after one interval")
	}

	h2 := f.Start(50 * time.Millisecond)
	h.Stop()
	if !f.Active() {
		t.Fatal("stopping a superseded handle must not stop the new one")
	}
	h2.Stop()
	clock = clock.Add(time.Second)
	if _, ok := f.Due(); ok || f.Active() {
		t.Fatal("stopped scheduler is due")
	}
}

func TestLoopWithTicker(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		mu          sync.Mutex
		generations []int
		running     bool
	)
	loop := NewLoop(16, OnChange(func(c *Controller) {
		mu.Lock()
		defer mu.Unlock()
		generations = append(generations, c.Stats().Generation)
		running = c.Running()
	}))

	cfg := config.DefaultConfig()
	cfg.IntervalMs = config.MinIntervalMs
	c, err := New(cfg, NewTicker(ctx, loop))
	if err != nil {
		t.Fatal(err)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error { return loop.Run(ctx, c) })

	if err := loop.Send(ctx, Play{}); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		mu.Lock()
		n := 0
		if len(generations) > 0 {
			n = generations[len(generations)-1]
		}
		mu.Unlock()
		if n >= 3 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("ticker did not advance the simulation, generations=%v", generations)
		case <-time.After(5 * time.Millisecond):
		}
	}

	if err := loop.Send(ctx, Pause{}); err != nil {
		t.Fatal(err)
	}
	// Wait for the pause to be processed, then make sure nothing advances.
	for {
		mu.Lock()
		r := running
		mu.Unlock()
		if !r {
			break
		}
		time.Sleep(time.Millisecond)
	}
	mu.Lock()
	paused := generations[len(generations)-1]
	mu.Unlock()

	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	after := generations[len(generations)-1]
	mu.Unlock()
	if after != paused {
		t.Fatalf("generation advanced from %d to %d after pause", paused, after)
	}

	cancel()
	if err := eg.Wait(); err != context.Canceled {
		t.Fatalf("loop exit err=%v", err)
	}
}

func TestLoopReportsRejectedCommands(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errs := make(chan error, 1)
	loop := NewLoop(1, OnError(func(_ Command, err error) { errs <- err }))
	c, err := New(config.DefaultConfig(), &Manual{})
	if err != nil {
		t.Fatal(err)
	}
	go loop.Run(ctx, c)

	if !loop.TrySend(SetInterval{Ms: 1}) {
		t.Fatal("empty queue refused a command")
	}
	select {
	case err := <-errs:
		if err == nil {
			t.Fatal("expected an error")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("rejected command not reported")
	}
}
